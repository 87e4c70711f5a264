// pkg/render/recorder.go
package render

import (
	"image/color"

	"tank-arena/pkg/geom"
)

type Op string

const (
	OpCircle  Op = "circle"
	OpPolygon Op = "polygon"
	OpLine    Op = "line"
)

// Call is one recorded draw. Points holds the center for circles, the
// transformed vertices for polygons and the two ends for lines.
type Call struct {
	Op       Op
	Points   []geom.Point
	Diameter float64
	Width    float64
	Color    color.RGBA
	Alpha    uint8
}

// Recorder is a Surface that remembers what was drawn. Used by tests and by
// headless runs.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillCircle(center geom.Point, diameter float64, clr color.RGBA, alpha uint8) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Points: []geom.Point{center}, Diameter: diameter, Color: clr, Alpha: alpha})
}

func (r *Recorder) FillPolygon(pose Pose, vertices []geom.Point, clr color.RGBA, alpha uint8) {
	r.Calls = append(r.Calls, Call{Op: OpPolygon, Points: pose.Transform(nil, vertices), Color: clr, Alpha: alpha})
}

func (r *Recorder) StrokeLine(from, to geom.Point, width float64, clr color.RGBA, alpha uint8) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Points: []geom.Point{from, to}, Width: width, Color: clr, Alpha: alpha})
}

// Filter returns the calls of one kind.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
