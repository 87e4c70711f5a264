// internal/arena/draw.go
package arena

import (
	"image/color"

	"tank-arena/internal/config"
	"tank-arena/pkg/render"
)

// Draw paints the round back to front: walls, pickups, trails, tanks with
// their modifier effects, projectiles.
func (a *Arena) Draw(s render.Surface) {
	for _, w := range a.grid.Walls() {
		s.FillPolygon(render.Pose{}, render.RectVertices(w.Rect()), config.WallColor, 255)
	}
	for _, p := range a.pickups {
		s.FillCircle(p.Position, a.cfg.Pickup.Size, config.PickupColor, 200)
		s.FillCircle(p.Position, a.cfg.Pickup.Size/3, pickupMark(p.Name), 255)
	}

	render.PaintTrails(s, a.trails, a.cfg.Effects.BulletTrailAlpha)

	for _, t := range a.tanks {
		t.Draw(s)
		t.Modifiers().Draw(a, s)
	}
	for _, p := range a.projectiles {
		if !p.Dead() {
			p.Draw(s)
		}
	}
}

// pickupMark tells pickups apart by the color of their center dot.
func pickupMark(name string) color.RGBA {
	switch name {
	case "m82":
		return config.WallColor
	case "breaker":
		return color.RGBA{200, 60, 40, 255}
	}
	return config.BackgroundColor
}
