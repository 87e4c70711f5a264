package modifier

import (
	"image/color"

	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
)

type fakeHost struct {
	pos       geom.Point
	facing    float64
	stealth   bool
	equipment string
}

func (h *fakeHost) Position() geom.Point          { return h.pos }
func (h *fakeHost) Facing() float64               { return h.facing }
func (h *fakeHost) CannonTip() geom.Point         { return h.pos.Add(geom.OffsetPoint(18, h.facing)) }
func (h *fakeHost) Color() color.RGBA             { return color.RGBA{40, 160, 40, 255} }
func (h *fakeHost) SetStealthAmmo(on bool)        { h.stealth = on }
func (h *fakeHost) EquipmentName() (string, bool) { return h.equipment, h.equipment != "" }

type gridWorld struct {
	grid *maze.Grid
}

func (w gridWorld) Bounds() geom.Bounds { return w.grid.Bounds() }
func (w gridWorld) Walls() []*maze.Wall { return w.grid.Walls() }
func (w gridWorld) StepSize() float64   { return 5 }
