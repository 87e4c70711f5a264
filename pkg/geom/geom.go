// pkg/geom/geom.go
package geom

import "math"

// Point is a position or displacement in arena pixels.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Axes reports a boolean per axis, e.g. which axes of travel are blocked.
type Axes struct {
	X, Y bool
}

// Any is true when at least one axis is set.
func (a Axes) Any() bool {
	return a.X || a.Y
}

// Or merges two axis sets.
func (a Axes) Or(b Axes) Axes {
	return Axes{X: a.X || b.X, Y: a.Y || b.Y}
}

// Bounds is the rectangular playfield, spanning [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// OutOfBounds reports, independently per axis, whether p lies outside the arena.
func (b Bounds) OutOfBounds(p Point) Axes {
	return Axes{
		X: p.X < 0 || p.X > b.Width,
		Y: p.Y < 0 || p.Y > b.Height,
	}
}

// OffsetPoint decomposes a speed along a direction (radians) into a displacement.
func OffsetPoint(speed, direction float64) Point {
	return Point{
		X: math.Cos(direction) * speed,
		Y: math.Sin(direction) * speed,
	}
}

// Direction is the inverse of OffsetPoint: the angle of the vector (dx, dy).
func Direction(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// PointInRect is an inclusive containment test.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Distance returns the straight-line distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Rotate turns p around the origin by angle radians.
func Rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
