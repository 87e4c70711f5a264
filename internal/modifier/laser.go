// internal/modifier/laser.go
package modifier

import (
	"slices"

	"tank-arena/internal/config"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/render"
)

// LaserSight draws an aiming line from the cannon to the first obstacle. It
// lasts as long as the host holds equipment that grants it.
type LaserSight struct {
	host Host
	cfg  config.LaserSightConfig
}

func NewLaserSight(host Host, cfg config.LaserSightConfig) *LaserSight {
	return &LaserSight{host: host, cfg: cfg}
}

func (l *LaserSight) Name() string { return NameLaserSight }

func (l *LaserSight) Update(set *Set) {
	name, ok := l.host.EquipmentName()
	if !ok || !slices.Contains(l.cfg.OnEquipment, name) {
		set.Remove(l)
	}
}

// Trace walks from the tank center along its facing and returns the first
// sampled point inside a wall or outside the arena.
func (l *LaserSight) Trace(w World) (geom.Point, bool) {
	origin, facing := l.host.Position(), l.host.Facing()
	bounds, walls, step := w.Bounds(), w.Walls(), w.StepSize()

	for dist := 0.0; dist < l.cfg.MaxDistance; dist += step {
		p := origin.Add(geom.OffsetPoint(dist, facing))
		if bounds.OutOfBounds(p).Any() {
			return p, true
		}
		for _, wall := range walls {
			if geom.PointInRect(p, wall.Rect()) {
				return p, true
			}
		}
	}
	return geom.Point{}, false
}

func (l *LaserSight) Draw(w World, s render.Surface) {
	end, ok := l.Trace(w)
	if !ok {
		return
	}
	s.StrokeLine(l.host.CannonTip(), end, l.cfg.Width, l.host.Color(), l.cfg.Alpha)
}
