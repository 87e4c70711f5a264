// internal/arena/pickup.go
package arena

import (
	"fmt"
	"slices"

	"tank-arena/internal/modifier"
	"tank-arena/internal/projectile"
	"tank-arena/internal/tank"
	"tank-arena/pkg/geom"
)

// Pickup is an item lying in a cell, waiting for a tank to drive over it.
type Pickup struct {
	Name     string
	Position geom.Point
}

// SpawnPickup places a pickup. Names are equipment kinds or pickup modifiers.
func (a *Arena) SpawnPickup(name string, pos geom.Point) {
	a.pickups = append(a.pickups, Pickup{Name: name, Position: pos})
	a.logger.Debug("Pickup spawned", "name", name, "x", pos.X, "y", pos.Y)
}

func (a *Arena) updatePickups() {
	cfg := a.cfg.Pickup
	if cfg.SpawnInterval > 0 && a.frame%cfg.SpawnInterval == 0 &&
		len(a.pickups) < cfg.Max && a.rng.Float64() < cfg.SpawnChance {
		cell, _ := a.grid.Cell(a.rng.Intn(a.grid.Cols()), a.rng.Intn(a.grid.Rows()))
		a.SpawnPickup(a.rng.ChooseWeighted(cfg.Table), cell.Midpoint())
	}

	for _, t := range a.tanks {
		if t.Destroyed() {
			continue
		}
		a.pickups = slices.DeleteFunc(a.pickups, func(p Pickup) bool {
			if geom.Distance(p.Position, t.Position()) >= (cfg.Size+t.Diameter())/2 {
				return false
			}
			if err := a.collect(t, p.Name); err != nil {
				a.logger.Warn("Pickup ignored", "name", p.Name, "err", err)
			}
			return true
		})
	}
}

func (a *Arena) collect(t *tank.Tank, name string) error {
	if slices.Contains(projectile.Equipment, projectile.Kind(name)) {
		return t.Equip(projectile.Kind(name))
	}
	m, err := modifier.New(name, t, a.cfg)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	t.Modifiers().Add(m)
	a.logger.Debug("Modifier picked up", "name", name, "player", tankName(t))
	return nil
}
