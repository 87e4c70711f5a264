// internal/projectile/projectile.go
package projectile

import (
	"errors"
	"fmt"
	"image/color"

	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/internal/trail"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

// Kind names a projectile variant. Equipment kinds double as equipment names.
type Kind string

const (
	KindBullet  Kind = "bullet"
	KindM82     Kind = "m82"
	KindBreaker Kind = "breaker"
)

// Equipment lists the kinds a tank can pick up as equipment.
var Equipment = []Kind{KindM82, KindBreaker}

var ErrUnknownKind = errors.New("projectile: unknown kind")

// World is what a projectile sees of the arena during a frame.
type World interface {
	Bounds() geom.Bounds
	Walls() []*maze.Wall
	RemoveWall(w *maze.Wall) bool
	Trails() *trail.Store
	StepSize() float64
}

type Movable interface {
	Position() geom.Point
	Lookahead() geom.Point
	Advance()
	RefreshLookahead()
}

type TankHittable interface {
	TankHit(t Target) bool
}

type SelfDestructible interface {
	Destroy()
	Dead() bool
}

// Projectile is a live shot. The arena calls OnFrame, then EnvCollision,
// then TankHit for each tank until one reports a hit; Draw runs separately.
type Projectile interface {
	Movable
	TankHittable
	SelfDestructible
	ID() entity.ID
	Kind() Kind
	Owner() Shooter
	OnFrame(w World)
	EnvCollision(w World)
	Draw(s render.Surface)
}

// New builds a projectile of the given kind at the shooter's cannon tip.
func New(kind Kind, id entity.ID, owner Shooter, cfg *config.Config) (Projectile, error) {
	switch kind {
	case KindBullet:
		return NewBullet(id, owner, cfg), nil
	case KindM82:
		return NewM82(id, owner, cfg), nil
	case KindBreaker:
		return NewBreaker(id, owner, cfg), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// base carries what every variant shares: motion, identity, owner, size and
// the dead flag, plus tank-hit resolution.
type base struct {
	Motion
	id       entity.ID
	kind     Kind
	owner    Shooter
	color    color.RGBA
	diameter float64
	dead     bool

	onDestroy func()
}

func newBase(kind Kind, id entity.ID, owner Shooter, speed, diameter float64) base {
	return base{
		Motion:   newMotion(owner.CannonTip(), speed, owner.Facing()),
		id:       id,
		kind:     kind,
		owner:    owner,
		color:    owner.Color(),
		diameter: diameter,
	}
}

func (b *base) ID() entity.ID     { return b.id }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) Owner() Shooter    { return b.owner }
func (b *base) Diameter() float64 { return b.diameter }
func (b *base) Dead() bool        { return b.dead }

// Destroy marks the projectile dead. Only the first call has effects.
func (b *base) Destroy() {
	if b.dead {
		return
	}
	b.dead = true
	if b.onDestroy != nil {
		b.onDestroy()
	}
}

// step moves one frame ahead.
func (b *base) step() {
	b.Advance()
	b.RefreshLookahead()
}

// hitsEdge tests the lookahead against the arena bounds.
func (b *base) hitsEdge(w World) geom.Axes {
	b.checkLookahead()
	return w.Bounds().OutOfBounds(b.next)
}

func (b *base) pose(origin geom.Point) render.Pose {
	return render.Pose{Position: b.pos, Rotation: b.direction, Origin: origin}
}

var (
	_ Projectile = (*Bullet)(nil)
	_ Projectile = (*M82)(nil)
	_ Projectile = (*Breaker)(nil)
)
