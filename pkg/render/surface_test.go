package render

import (
	"math"
	"testing"

	"tank-arena/pkg/geom"
)

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestPoseApply(t *testing.T) {
	pose := Pose{
		Position: geom.Point{X: 100, Y: 50},
		Rotation: math.Pi / 2,
		Origin:   geom.Point{X: -3, Y: -1.5},
	}
	// (3, 1.5) is the shape center, so it lands on the position.
	if got := pose.Apply(geom.Point{X: 3, Y: 1.5}); !near(got, pose.Position) {
		t.Errorf("Apply(center) = %v, want %v", got, pose.Position)
	}
	// (6, 1.5) is the tip: 3px ahead, rotated to point down.
	if got := pose.Apply(geom.Point{X: 6, Y: 1.5}); !near(got, geom.Point{X: 100, Y: 53}) {
		t.Errorf("Apply(tip) = %v", got)
	}
}

func TestRecorderTransformsPolygons(t *testing.T) {
	var rec Recorder
	rec.FillPolygon(Pose{Position: geom.Point{X: 10, Y: 10}}, RectVertices(geom.Rect{Width: 2, Height: 1}), colorRed, 255)
	rec.FillCircle(geom.Point{X: 1, Y: 2}, 8, colorRed, 80)

	polys := rec.Filter(OpPolygon)
	if len(polys) != 1 {
		t.Fatalf("polygons = %d, want 1", len(polys))
	}
	want := []geom.Point{{X: 10, Y: 10}, {X: 12, Y: 10}, {X: 12, Y: 11}, {X: 10, Y: 11}}
	for i, p := range polys[0].Points {
		if !near(p, want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, p, want[i])
		}
	}
	if c := rec.Filter(OpCircle); len(c) != 1 || c[0].Alpha != 80 || c[0].Diameter != 8 {
		t.Errorf("circles = %+v", c)
	}
}
