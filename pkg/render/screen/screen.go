// pkg/render/screen/screen.go
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tank-arena/pkg/geom"
	"tank-arena/pkg/render"
)

// Screen draws onto an ebiten image. Polygons go through a vector path and
// DrawTriangles, reusing the vertex buffers between calls.
type Screen struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
	scratch []geom.Point
}

var _ render.Surface = (*Screen)(nil)

func NewScreen() *Screen {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Screen{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 32),
		fillIs:  make([]uint16, 0, 48),
	}
}

// Bind sets the image the next draw calls go to. Called once per Draw.
func (s *Screen) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Screen) FillCircle(center geom.Point, diameter float64, clr color.RGBA, alpha uint8) {
	vector.DrawFilledCircle(s.target, float32(center.X), float32(center.Y), float32(diameter/2), render.WithAlpha(clr, alpha), true)
}

func (s *Screen) StrokeLine(from, to geom.Point, width float64, clr color.RGBA, alpha uint8) {
	vector.StrokeLine(s.target, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), render.WithAlpha(clr, alpha), true)
}

func (s *Screen) FillPolygon(pose render.Pose, vertices []geom.Point, clr color.RGBA, alpha uint8) {
	if len(vertices) < 3 {
		return
	}
	s.scratch = pose.Transform(s.scratch[:0], vertices)

	var path vector.Path
	for i, p := range s.scratch {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()

	s.fillVs, s.fillIs = path.AppendVerticesAndIndicesForFilling(s.fillVs[:0], s.fillIs[:0])
	for i := range s.fillVs {
		s.fillVs[i].ColorR = float32(clr.R) / 255
		s.fillVs[i].ColorG = float32(clr.G) / 255
		s.fillVs[i].ColorB = float32(clr.B) / 255
		s.fillVs[i].ColorA = float32(alpha) / 255
	}
	s.target.DrawTriangles(s.fillVs, s.fillIs, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       ebiten.FillRuleNonZero,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

// FillRect is a convenience for walls and the HUD strip.
func (s *Screen) FillRect(r geom.Rect, clr color.RGBA) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
