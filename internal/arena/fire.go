// internal/arena/fire.go
package arena

import (
	"errors"
	"fmt"
	"slices"

	"tank-arena/internal/event"
	"tank-arena/internal/projectile"
	"tank-arena/internal/tank"
)

var (
	ErrNilShooter       = errors.New("arena: no tank to fire from")
	ErrTankDestroyed    = errors.New("arena: tank is destroyed")
	ErrNoAmmo           = errors.New("arena: out of ammo")
	ErrUnknownEquipment = errors.New("arena: unknown equipment")
)

// Fire shoots from t. Held equipment is used first; otherwise a standard
// round is taken from the magazine. Nothing is consumed when an error is
// returned.
func (a *Arena) Fire(t *tank.Tank) (projectile.Projectile, error) {
	if t == nil {
		return nil, ErrNilShooter
	}
	if t.Destroyed() {
		return nil, fmt.Errorf("fire from %s: %w", tankName(t), ErrTankDestroyed)
	}

	kind := projectile.KindBullet
	if eq := t.Equipment(); eq != nil {
		if !slices.Contains(projectile.Equipment, projectile.Kind(eq.Name)) {
			return nil, fmt.Errorf("fire %q from %s: %w", eq.Name, tankName(t), ErrUnknownEquipment)
		}
		if k, ok := t.UseEquipment(); ok {
			kind = k
		}
	}
	if kind == projectile.KindBullet && !t.TakeAmmo() {
		return nil, fmt.Errorf("fire from %s: %w", tankName(t), ErrNoAmmo)
	}

	p, err := projectile.New(kind, a.ids.NewEntity(), t, a.cfg)
	if err != nil {
		return nil, err
	}
	a.projectiles = append(a.projectiles, p)
	a.events.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileData{ID: p.ID(), Kind: string(kind), Shooter: tankName(t), Position: p.Position()},
	})
	return p, nil
}
