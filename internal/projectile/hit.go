// internal/projectile/hit.go
package projectile

import (
	"image/color"

	"tank-arena/pkg/geom"
)

//go:generate go tool mockgen -destination=./mocks/projectile_mock.go -package=mocks . Scorer,Target

// Scorer is credited with kills made by its tank.
type Scorer interface {
	GotKill(victim Target)
}

// Shooter is the tank a projectile was fired from. The projectile only holds
// it as a back-reference.
type Shooter interface {
	CannonTip() geom.Point
	Facing() float64
	Color() color.RGBA
	StealthAmmo() bool
	Owner() Scorer
	ReturnAmmo()
}

// Target is anything a projectile can hit.
type Target interface {
	Position() geom.Point
	Diameter() float64
	HandleHit()
}

// TankHit resolves a hit against t and reports whether one happened, so the
// caller can stop testing further tanks. A stealthed shot never hits the tank
// that fired it.
func (b *base) TankHit(t Target) bool {
	if b.dead {
		return false
	}
	if b.owner.StealthAmmo() && sameTank(b.owner, t) {
		return false
	}
	if geom.Distance(b.pos, t.Position()) >= b.diameter/2+t.Diameter()/2 {
		return false
	}

	if scorer := b.owner.Owner(); scorer != nil {
		scorer.GotKill(t)
	}
	b.Destroy()
	t.HandleHit()
	return true
}

func sameTank(s Shooter, t Target) bool {
	return any(s) == any(t)
}
