// internal/event/types.go
package event

import (
	"tank-arena/internal/entity"
	"tank-arena/pkg/geom"
)

const (
	ProjectileFired     EventType = "ProjectileFired"
	ProjectileDestroyed EventType = "ProjectileDestroyed"
	TankHit             EventType = "TankHit"
	WallDestroyed       EventType = "WallDestroyed"
	ModifierRemoved     EventType = "ModifierRemoved"
	ArenaStarted        EventType = "ArenaStarted"
	ArenaCleared        EventType = "ArenaCleared"
)

// ProjectileData accompanies ProjectileFired and ProjectileDestroyed.
type ProjectileData struct {
	ID       entity.ID
	Kind     string
	Shooter  string
	Position geom.Point
}

// HitData accompanies TankHit.
type HitData struct {
	Projectile entity.ID
	Attacker   string
	Victim     string
}

// WallData accompanies WallDestroyed.
type WallData struct {
	Col, Row   int
	Side       string
	Projectile entity.ID
}

// ModifierData accompanies ModifierRemoved.
type ModifierData struct {
	Name  string
	Owner string
}
