package projectile

import (
	"math"
	"slices"
	"testing"

	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

func TestBreakerRemovesWallAndDies(t *testing.T) {
	w := newWorld(3, 3)
	target := w.wall(0, 0, maze.Right)
	other := w.wall(1, 1, maze.Bottom)
	b := NewBreaker(1, &fakeShooter{tip: geom.Point{X: 30, Y: 20}}, testConfig())

	for i := 0; i < 10 && !b.Dead(); i++ {
		frame(b, w)
	}
	if !b.Dead() {
		t.Fatal("breaker never hit the wall")
	}
	if !target.Removed() || slices.Contains(w.Walls(), target) {
		t.Error("wall still in the maze")
	}
	if len(w.removed) != 1 || !slices.Contains(w.Walls(), other) {
		t.Errorf("removed = %v, want only the wall in the path", w.removed)
	}
}

func TestBreakerIgnoresWallEndItPasses(t *testing.T) {
	w := newWorld(3, 3)
	wall := w.wall(0, 0, maze.Right) // x 52..58, y -3..58
	// Heads down-right under the wall's free end: the x-only projection of
	// the sample reaches the wall, the path itself does not.
	b := NewBreaker(1, &fakeShooter{tip: geom.Point{X: 49.5, Y: 57}, facing: math.Pi / 4}, testConfig())

	b.EnvCollision(w)
	if b.Dead() || wall.Removed() || len(w.removed) != 0 {
		t.Errorf("dead=%v removed=%v, want the wall left alone", b.Dead(), w.removed)
	}
}

func TestBreakerDestroyedByEdge(t *testing.T) {
	w := newWorld(3, 3)
	b := NewBreaker(1, &fakeShooter{tip: geom.Point{X: 80, Y: 3}, facing: -1.5707963267948966}, testConfig())

	frame(b, w)
	if !b.Dead() {
		t.Errorf("breaker alive with lookahead %v", b.Lookahead())
	}
}

func TestBreakerShape(t *testing.T) {
	b := NewBreaker(1, &fakeShooter{tip: geom.Point{X: 50, Y: 50}}, testConfig())
	var rec render.Recorder
	b.Draw(&rec)

	c := rec.Filter(render.OpPolygon)
	if len(c) != 1 || len(c[0].Points) != 8 || c[0].Alpha != 255 {
		t.Fatalf("draw calls = %+v", rec.Calls)
	}
	if p := c[0].Points[0]; math.Abs(p.X-55) > 1e-9 || math.Abs(p.Y-53.33333) > 1e-9 {
		t.Errorf("first vertex = %v, want (55, 53.33333)", p)
	}
}
