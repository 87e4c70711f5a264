// internal/projectile/shapes.go
package projectile

import "tank-arena/pkg/geom"

// Outlines are in local units with the nose pointing along +x. The origin
// offset moves the shape center onto the projectile position.
var (
	m82Origin = geom.Point{X: -3, Y: -1.5}
	m82Shape  = []geom.Point{
		{X: 1.5, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: 2},
		{X: 1.5, Y: 3},
		{X: 3, Y: 3},
		{X: 6, Y: 1.5},
		{X: 3, Y: 0},
	}

	breakerOrigin = geom.Point{X: -5, Y: -5}
	breakerShape  = []geom.Point{
		{X: 10, Y: 8.33333},
		{X: 6.66667, Y: 10},
		{X: 1.66667, Y: 8.33333},
		{X: 0, Y: 6.66667},
		{X: 0, Y: 3.33333},
		{X: 1.66667, Y: 1.66667},
		{X: 6.66667, Y: 0},
		{X: 10, Y: 1.66667},
	}
)
