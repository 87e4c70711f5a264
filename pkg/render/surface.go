// pkg/render/surface.go
package render

import (
	"image/color"

	"tank-arena/pkg/geom"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is the drawing target of the simulation. Alpha is passed with every
// call rather than carried on the color.
type Surface interface {
	FillCircle(center geom.Point, diameter float64, clr color.RGBA, alpha uint8)
	FillPolygon(pose Pose, vertices []geom.Point, clr color.RGBA, alpha uint8)
	StrokeLine(from, to geom.Point, width float64, clr color.RGBA, alpha uint8)
}

// Pose places a shape: vertices are shifted by Origin, rotated by Rotation
// and then moved to Position.
type Pose struct {
	Position geom.Point
	Rotation float64
	Origin   geom.Point
}

// Apply maps a local vertex to arena coordinates.
func (p Pose) Apply(v geom.Point) geom.Point {
	return p.Position.Add(geom.Rotate(v.Add(p.Origin), p.Rotation))
}

// Transform maps every vertex, appending to dst.
func (p Pose) Transform(dst, vertices []geom.Point) []geom.Point {
	for _, v := range vertices {
		dst = append(dst, p.Apply(v))
	}
	return dst
}

// RectVertices is the outline of r, clockwise from the top-left corner.
func RectVertices(r geom.Rect) []geom.Point {
	return []geom.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}
