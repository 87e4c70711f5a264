// internal/projectile/bullet.go
package projectile

import (
	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/internal/trail"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/render"
)

// Bullet is the standard round. It bounces off edges and walls, lives for a
// fixed number of frames, leaves a trail unless stealthed and gives its ammo
// back when destroyed.
type Bullet struct {
	base
	duration int
	cfg      *config.Config
}

func NewBullet(id entity.ID, owner Shooter, cfg *config.Config) *Bullet {
	b := &Bullet{
		base:     newBase(KindBullet, id, owner, cfg.Bullet.Speed, cfg.Bullet.Diameter),
		duration: cfg.Bullet.Duration,
		cfg:      cfg,
	}
	b.onDestroy = owner.ReturnAmmo
	return b
}

// Duration is the number of frames left.
func (b *Bullet) Duration() int { return b.duration }

func (b *Bullet) OnFrame(w World) {
	b.step()
	if !b.owner.StealthAmmo() {
		w.Trails().Append(b.id, b.pos, trail.Look{Color: b.color, Diameter: b.diameter})
	}

	b.duration--
	if b.duration <= 0 {
		b.Destroy()
	}
}

func (b *Bullet) EnvCollision(w World) {
	if out := b.hitsEdge(w); out.Any() {
		b.bounce(out)
	}
	hits := sweepWalls(&b.Motion, w.Walls(), w.StepSize())
	var blocked geom.Axes
	for _, h := range hits {
		blocked = blocked.Or(h.Blocked)
	}
	if blocked.Any() {
		b.bounce(blocked)
	}
}

// bounce mirrors the displacement on the given axes.
func (b *Bullet) bounce(axes geom.Axes) {
	d := b.delta
	if axes.X {
		d.X = -d.X
	}
	if axes.Y {
		d.Y = -d.Y
	}
	b.SetDisplacement(d)
}

func (b *Bullet) Draw(s render.Surface) {
	// Увеличенный диаметр в первые кадры - вспышка выстрела
	elapsed := float64(b.cfg.Bullet.Duration - b.duration)
	d := max(b.diameter*b.cfg.Effects.MuzzleSize-elapsed*b.cfg.Effects.MuzzleSpeed, b.diameter)

	alpha := uint8(255)
	if b.owner.StealthAmmo() {
		alpha = b.cfg.Modifier.StealthAmmo.Alpha
	}
	s.FillCircle(b.pos, d, b.color, alpha)
}
