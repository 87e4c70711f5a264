// internal/projectile/breaker.go
package projectile

import (
	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/pkg/render"
)

// Breaker knocks out the first wall it touches and is spent doing so.
type Breaker struct {
	base
	cfg *config.Config
}

func NewBreaker(id entity.ID, owner Shooter, cfg *config.Config) *Breaker {
	br := cfg.Equipment.Breaker
	return &Breaker{
		base: newBase(KindBreaker, id, owner, br.Speed, br.Diameter),
		cfg:  cfg,
	}
}

func (b *Breaker) OnFrame(World) {
	b.step()
}

func (b *Breaker) EnvCollision(w World) {
	if b.hitsEdge(w).Any() {
		b.Destroy()
		return
	}
	if hits := sweepContacts(&b.Motion, w.Walls(), w.StepSize()); len(hits) > 0 {
		w.RemoveWall(hits[0])
		b.Destroy()
	}
}

func (b *Breaker) Draw(s render.Surface) {
	alpha := uint8(255)
	if b.owner.StealthAmmo() {
		alpha = b.cfg.Modifier.StealthAmmo.Alpha
	}
	s.FillPolygon(b.pose(breakerOrigin), breakerShape, b.color, alpha)
}
