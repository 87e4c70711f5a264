// internal/arena/frame.go
package arena

import (
	"slices"

	"tank-arena/internal/entity"
	"tank-arena/internal/event"
	"tank-arena/internal/projectile"
	"tank-arena/internal/tank"
)

// Update runs one frame: pickups, tank modifiers, then every live projectile
// (move, edges and walls, tanks). Dead projectiles and destroyed tanks are
// compacted out once the pass is over, so nothing is skipped or visited twice.
func (a *Arena) Update() {
	a.frame++
	a.updatePickups()

	for _, t := range a.tanks {
		if !t.Destroyed() {
			t.Modifiers().Update()
		}
	}

	for _, p := range a.projectiles {
		a.current = p.ID()
		a.simulate(p)
	}
	a.current = entity.None

	a.compact()
}

func (a *Arena) simulate(p projectile.Projectile) {
	if p.Dead() {
		return
	}
	p.OnFrame(a)
	if p.Dead() {
		return
	}
	p.EnvCollision(a)
	if p.Dead() {
		return
	}
	for _, t := range a.tanks {
		if t.Destroyed() {
			continue
		}
		if p.TankHit(t) {
			a.events.Dispatch(event.Event{
				Type: event.TankHit,
				Data: event.HitData{Projectile: p.ID(), Attacker: shooterName(p.Owner()), Victim: tankName(t)},
			})
			break
		}
	}
}

func (a *Arena) compact() {
	a.projectiles = slices.DeleteFunc(a.projectiles, func(p projectile.Projectile) bool {
		if !p.Dead() {
			return false
		}
		a.trails.MarkDead(p.ID())
		a.events.Dispatch(event.Event{
			Type: event.ProjectileDestroyed,
			Data: event.ProjectileData{ID: p.ID(), Kind: string(p.Kind()), Shooter: shooterName(p.Owner()), Position: p.Position()},
		})
		return true
	})
	a.tanks = slices.DeleteFunc(a.tanks, func(t *tank.Tank) bool {
		if !t.Destroyed() {
			return false
		}
		t.Modifiers().Clear()
		a.logger.Info("Tank destroyed", "player", tankName(t))
		return true
	})
}

func shooterName(s projectile.Shooter) string {
	if t, ok := s.(*tank.Tank); ok {
		return tankName(t)
	}
	return "unknown"
}
