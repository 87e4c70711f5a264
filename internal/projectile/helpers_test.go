package projectile

import (
	"image/color"

	"tank-arena/internal/config"
	"tank-arena/internal/trail"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
)

type fakeShooter struct {
	tip      geom.Point
	facing   float64
	stealth  bool
	returned int
	hits     int
	scorer   Scorer
}

func (s *fakeShooter) CannonTip() geom.Point { return s.tip }
func (s *fakeShooter) Facing() float64       { return s.facing }
func (s *fakeShooter) Color() color.RGBA     { return color.RGBA{200, 40, 40, 255} }
func (s *fakeShooter) StealthAmmo() bool     { return s.stealth }
func (s *fakeShooter) Owner() Scorer         { return s.scorer }
func (s *fakeShooter) ReturnAmmo()           { s.returned++ }

// the shooter doubles as a target for self-hit checks
func (s *fakeShooter) Position() geom.Point { return s.tip }
func (s *fakeShooter) Diameter() float64    { return 20 }
func (s *fakeShooter) HandleHit()           { s.hits++ }

type fakeTarget struct {
	pos  geom.Point
	d    float64
	hits int
}

func (t *fakeTarget) Position() geom.Point { return t.pos }
func (t *fakeTarget) Diameter() float64    { return t.d }
func (t *fakeTarget) HandleHit()           { t.hits++ }

type fakeWorld struct {
	grid    *maze.Grid
	trails  *trail.Store
	removed []*maze.Wall
}

func newWorld(cols, rows int) *fakeWorld {
	return &fakeWorld{grid: maze.NewGrid(cols, rows, 55, 6), trails: trail.NewStore()}
}

func (w *fakeWorld) Bounds() geom.Bounds  { return w.grid.Bounds() }
func (w *fakeWorld) Walls() []*maze.Wall  { return w.grid.Walls() }
func (w *fakeWorld) Trails() *trail.Store { return w.trails }
func (w *fakeWorld) StepSize() float64    { return 5 }
func (w *fakeWorld) RemoveWall(x *maze.Wall) bool {
	if !w.grid.Remove(x) {
		return false
	}
	w.removed = append(w.removed, x)
	return true
}

func (w *fakeWorld) wall(col, row int, side maze.Side) *maze.Wall {
	wall, err := w.grid.SetWall(col, row, side)
	if err != nil {
		panic(err)
	}
	return wall
}

// frame runs one simulation step the way the arena does.
func frame(p Projectile, w World) {
	p.OnFrame(w)
	if !p.Dead() {
		p.EnvCollision(w)
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}
