// internal/projectile/sweep.go
package projectile

import (
	"fmt"

	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
)

// WallHit is one wall touched by a sweep and the axes of travel it blocks.
type WallHit struct {
	Wall    *maze.Wall
	Blocked geom.Axes
}

// sweepWalls walks from the current position to the lookahead in increments
// of at most step, so a wall thicker than step cannot be skipped. Every sample
// is tested as the full point and as its x-only and y-only projections, which
// tells which axis is blocked. The first sample touching any wall wins; all
// walls touched at that sample are returned in enumeration order.
//
// Sampling starts one step out: the current position is last frame's final
// sample and was already tested.
func sweepWalls(m *Motion, walls []*maze.Wall, step float64) []WallHit {
	var hits []WallHit
	sweep(m, walls, step, func(t float64) bool {
		hits = wallsAt(m, walls, t)
		return len(hits) > 0
	})
	return hits
}

// sweepContacts is sweepWalls for projectiles that do not bounce: a wall
// counts only when the sampled point itself lies inside it.
func sweepContacts(m *Motion, walls []*maze.Wall, step float64) []*maze.Wall {
	var hits []*maze.Wall
	sweep(m, walls, step, func(t float64) bool {
		hits = contactsAt(m, walls, t)
		return len(hits) > 0
	})
	return hits
}

// sweep calls hit for each sample fraction t in (0, 1] until it reports true.
func sweep(m *Motion, walls []*maze.Wall, step float64, hit func(t float64) bool) {
	if step <= 0 {
		panic(fmt.Sprintf("projectile: sweep step must be positive, got %v", step))
	}
	if len(walls) == 0 {
		return
	}

	for dist := step; dist < m.speed; dist += step {
		if hit(dist / m.speed) {
			return
		}
	}
	hit(1)
}

func wallsAt(m *Motion, walls []*maze.Wall, t float64) []WallHit {
	full := m.pos.Add(m.delta.Scale(t))
	xOnly := geom.Point{X: full.X, Y: m.pos.Y}
	yOnly := geom.Point{X: m.pos.X, Y: full.Y}

	var hits []WallHit
	for _, w := range walls {
		r := w.Rect()
		blocked := geom.Axes{X: geom.PointInRect(xOnly, r), Y: geom.PointInRect(yOnly, r)}
		if !blocked.Any() && !geom.PointInRect(full, r) {
			continue
		}
		if !blocked.Any() {
			// corner: neither axis alone reaches the wall
			blocked = geom.Axes{X: true, Y: true}
		}
		hits = append(hits, WallHit{Wall: w, Blocked: blocked})
	}
	return hits
}

func contactsAt(m *Motion, walls []*maze.Wall, t float64) []*maze.Wall {
	p := m.pos.Add(m.delta.Scale(t))
	var hits []*maze.Wall
	for _, w := range walls {
		if geom.PointInRect(p, w.Rect()) {
			hits = append(hits, w)
		}
	}
	return hits
}
