// internal/projectile/m82.go
package projectile

import (
	"fmt"

	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

// M82 is the penetrator. It slows down in the first wall it meets and passes
// through it, but any other wall or an arena edge destroys it.
type M82 struct {
	base
	cfg *config.Config

	penetrated bool
	wall       *maze.Wall // nil once spent: the wall it went through is gone
}

func NewM82(id entity.ID, owner Shooter, cfg *config.Config) *M82 {
	m82 := cfg.Equipment.M82
	return &M82{
		base: newBase(KindM82, id, owner, m82.Speed, m82.Diameter),
		cfg:  cfg,
	}
}

// PenetratedWall is the wall currently being passed through, if any.
func (m *M82) PenetratedWall() *maze.Wall { return m.wall }

// Penetrated reports whether the first wall contact has happened.
func (m *M82) Penetrated() bool { return m.penetrated }

func (m *M82) OnFrame(World) {
	m.step()
}

func (m *M82) EnvCollision(w World) {
	if m.hitsEdge(w).Any() {
		m.Destroy()
		return
	}
	if m.wall != nil && m.wall.Removed() {
		panic(fmt.Sprintf("projectile: m82 %d still penetrating removed %s", m.id, m.wall))
	}

	hits := sweepContacts(&m.Motion, w.Walls(), w.StepSize())
	if len(hits) == 0 {
		return
	}
	if !m.penetrated {
		m.penetrate(hits[0])
	}
	for _, h := range hits {
		if h != m.wall {
			m.Destroy()
			return
		}
	}
}

func (m *M82) penetrate(w *maze.Wall) {
	m.penetrated = true
	m.wall = w
	m.SetVelocity(m.speed/m.cfg.Equipment.M82.PenetrationSpeedDivisor, m.direction)
}

// ForgetWall drops the remembered wall when it is removed from the maze. The
// projectile stays spent: the next wall it touches destroys it.
func (m *M82) ForgetWall(w *maze.Wall) {
	if m.wall == w {
		m.wall = nil
	}
}

func (m *M82) Draw(s render.Surface) {
	alpha := uint8(255)
	if m.owner.StealthAmmo() {
		alpha = render.ScaleAlpha(m.cfg.Modifier.StealthAmmo.Alpha, m.cfg.Equipment.M82.StealthModifier)
	}
	s.FillPolygon(m.pose(m82Origin), m82Shape, m.color, alpha)
}
