// internal/projectile/motion.go
package projectile

import (
	"fmt"

	"tank-arena/pkg/geom"
)

// Motion is the kinematic state every projectile embeds. Speed, direction and
// displacement are only changed together, and every setter refreshes the
// lookahead, so Lookahead() is always position + displacement.
type Motion struct {
	pos       geom.Point
	delta     geom.Point
	next      geom.Point
	direction float64
	speed     float64
}

func newMotion(origin geom.Point, speed, direction float64) Motion {
	m := Motion{pos: origin}
	m.SetVelocity(speed, direction)
	return m
}

func (m *Motion) Position() geom.Point     { return m.pos }
func (m *Motion) Displacement() geom.Point { return m.delta }
func (m *Motion) Lookahead() geom.Point    { return m.next }
func (m *Motion) Direction() float64       { return m.direction }
func (m *Motion) Speed() float64           { return m.speed }

// Advance moves the projectile by one frame of displacement.
func (m *Motion) Advance() {
	m.pos = m.pos.Add(m.delta)
}

// RefreshLookahead recomputes the position one frame ahead.
func (m *Motion) RefreshLookahead() {
	m.next = m.pos.Add(m.delta)
}

// SetVelocity recomputes the displacement from a new speed and direction.
func (m *Motion) SetVelocity(speed, direction float64) {
	m.speed = speed
	m.direction = direction
	m.delta = geom.OffsetPoint(speed, direction)
	m.RefreshLookahead()
}

// SetDisplacement replaces the displacement and derives the direction from
// it. Speed is kept: callers only mirror axes, which preserves magnitude.
func (m *Motion) SetDisplacement(d geom.Point) {
	m.delta = d
	m.direction = geom.Direction(d.X, d.Y)
	m.RefreshLookahead()
}

// checkLookahead panics when the lookahead no longer matches the current
// position and displacement. Collision code must not run on stale geometry.
func (m *Motion) checkLookahead() {
	if want := m.pos.Add(m.delta); m.next != want {
		panic(fmt.Sprintf("projectile: stale lookahead %v, want %v", m.next, want))
	}
}
