// internal/tank/player.go
package tank

import (
	"github.com/google/uuid"

	"tank-arena/internal/projectile"
)

// Player owns a tank and keeps its score across rounds.
type Player struct {
	ID    uuid.UUID
	Name  string
	Color string // hex, e.g. "e63946"
	Kills int
}

func NewPlayer(name, color string) *Player {
	return &Player{ID: uuid.New(), Name: name, Color: color}
}

// GotKill credits the player with a hit made by its tank.
func (p *Player) GotKill(projectile.Target) {
	p.Kills++
}
