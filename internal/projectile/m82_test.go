package projectile

import (
	"math"
	"testing"

	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

func TestM82SlowsDownInFirstWall(t *testing.T) {
	w := newWorld(4, 3)
	first := w.wall(0, 0, maze.Right) // x 52..58
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 30, Y: 20}}, testConfig())

	frame(m, w)
	if m.Dead() {
		t.Fatal("m82 destroyed by its first wall")
	}
	if m.PenetratedWall() != first {
		t.Fatalf("penetrated wall = %v, want %v", m.PenetratedWall(), first)
	}
	if m.Speed() != 12.0/3 {
		t.Errorf("speed = %v, want exactly 4", m.Speed())
	}
	if d := m.Displacement(); math.Abs(d.X-4) > 1e-12 || d.Y != 0 {
		t.Errorf("displacement = %v, want (4, 0)", d)
	}

	// keeps passing while it overlaps the same wall
	for m.Position().X < 62 {
		frame(m, w)
		if m.Dead() {
			t.Fatalf("m82 destroyed inside its own wall at %v", m.Position())
		}
	}
}

func TestM82DestroyedBySecondWall(t *testing.T) {
	w := newWorld(4, 3)
	first := w.wall(0, 0, maze.Right)
	w.wall(1, 0, maze.Right) // x 107..113
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 30, Y: 20}}, testConfig())

	for i := 0; i < 40 && !m.Dead(); i++ {
		frame(m, w)
	}
	if !m.Dead() {
		t.Fatal("m82 survived a second wall")
	}
	if x := m.Position().X; x < 100 || x > 113 {
		t.Errorf("destroyed at x=%v, want in front of the second wall", x)
	}
	if m.PenetratedWall() != first {
		t.Errorf("penetrated wall = %v, want %v", m.PenetratedWall(), first)
	}
}

func TestM82IgnoresWallEndItPasses(t *testing.T) {
	w := newWorld(3, 3)
	w.wall(0, 0, maze.Right) // x 52..58, y -3..58
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 49.5, Y: 57}, facing: math.Pi / 4}, testConfig())

	m.EnvCollision(w)
	if m.Dead() || m.Penetrated() {
		t.Fatalf("dead=%v penetrated=%v past a wall it never touched", m.Dead(), m.Penetrated())
	}
	if m.Speed() != 12 {
		t.Errorf("speed = %v, want 12", m.Speed())
	}
}

func TestM82DestroyedByEdge(t *testing.T) {
	w := newWorld(3, 3)
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 150, Y: 80}}, testConfig())

	frame(m, w)
	if !m.Dead() {
		t.Errorf("m82 alive with lookahead %v outside %v", m.Lookahead(), w.Bounds())
	}
}

// Two walls meeting at a junction are touched by the same sample. Only the
// first one enumerated can be penetrated, so the other destroys the shot.
func TestM82DestroyedAtWallJunction(t *testing.T) {
	w := newWorld(3, 3)
	right := w.wall(0, 0, maze.Right)
	w.wall(0, 0, maze.Bottom)
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 30, Y: 30}, facing: math.Pi / 4}, testConfig())

	for i := 0; i < 5 && !m.Dead(); i++ {
		frame(m, w)
	}
	if !m.Dead() {
		t.Fatal("m82 passed through a junction")
	}
	if m.PenetratedWall() != right {
		t.Errorf("penetrated wall = %v, want %v", m.PenetratedWall(), right)
	}
}

func TestM82ForgetsRemovedWall(t *testing.T) {
	w := newWorld(4, 3)
	first := w.wall(0, 0, maze.Right)
	w.wall(1, 0, maze.Right)
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 30, Y: 20}}, testConfig())

	frame(m, w)
	w.RemoveWall(first)
	m.ForgetWall(first)

	if !m.Penetrated() || m.PenetratedWall() != nil {
		t.Fatalf("penetrated=%v wall=%v, want spent", m.Penetrated(), m.PenetratedWall())
	}
	for i := 0; i < 40 && !m.Dead(); i++ {
		frame(m, w)
	}
	if !m.Dead() {
		t.Error("spent m82 passed through another wall")
	}
	if m.Speed() != 4 {
		t.Errorf("speed = %v, want the single slow-down only", m.Speed())
	}
}

func TestM82PanicsOnRemovedRememberedWall(t *testing.T) {
	w := newWorld(3, 3)
	first := w.wall(0, 0, maze.Right)
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 30, Y: 20}}, testConfig())
	frame(m, w)
	w.RemoveWall(first)

	defer func() {
		if recover() == nil {
			t.Error("EnvCollision kept going with a removed wall")
		}
	}()
	frame(m, w)
}

func TestM82Shape(t *testing.T) {
	m := NewM82(1, &fakeShooter{tip: geom.Point{X: 10, Y: 10}, stealth: true}, testConfig())
	var rec render.Recorder
	m.Draw(&rec)

	c := rec.Filter(render.OpPolygon)
	if len(c) != 1 || len(c[0].Points) != 7 {
		t.Fatalf("draw calls = %+v", rec.Calls)
	}
	if c[0].Alpha != 30 {
		t.Errorf("stealth alpha = %d, want 30", c[0].Alpha)
	}
	// nose of the shape sits 3px ahead of the center
	if tip := c[0].Points[5]; tip != (geom.Point{X: 13, Y: 10}) {
		t.Errorf("nose = %v, want (13, 10)", tip)
	}
}
