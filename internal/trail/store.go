// internal/trail/store.go
package trail

import (
	"image/color"
	"slices"

	"tank-arena/internal/entity"
	"tank-arena/pkg/geom"
)

// Look is how a trail is painted; fixed when the trail is created.
type Look struct {
	Color    color.RGBA
	Diameter float64
}

// Trail is the recent position history of one projectile.
type Trail struct {
	Look   Look
	Points []geom.Point
	// Dead is set once the projectile is gone; the trail keeps fading after that.
	Dead bool
}

// Store keeps trails keyed by projectile identity. It does not own the
// projectiles, so a trail outlives the projectile that drew it until the
// render layer prunes it.
type Store struct {
	trails map[entity.ID]*Trail
	order  []entity.ID
}

func NewStore() *Store {
	return &Store{trails: make(map[entity.ID]*Trail)}
}

// Append adds p to the trail of id, creating the trail with the given look on
// first use.
func (s *Store) Append(id entity.ID, p geom.Point, look Look) {
	t, ok := s.trails[id]
	if !ok {
		t = &Trail{Look: look}
		s.trails[id] = t
		s.order = append(s.order, id)
	}
	t.Points = append(t.Points, p)
}

// MarkDead flags the trail of a destroyed projectile. Unknown IDs are ignored:
// stealthed shots never had a trail.
func (s *Store) MarkDead(id entity.ID) {
	if t, ok := s.trails[id]; ok {
		t.Dead = true
	}
}

func (s *Store) Get(id entity.ID) (*Trail, bool) {
	t, ok := s.trails[id]
	return t, ok
}

// Points returns the positions recorded for id, oldest first.
func (s *Store) Points(id entity.ID) []geom.Point {
	if t, ok := s.trails[id]; ok {
		return t.Points
	}
	return nil
}

func (s *Store) Has(id entity.ID) bool {
	_, ok := s.trails[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.trails)
}

// Each visits trails in creation order. fn may delete the trail it is given.
func (s *Store) Each(fn func(id entity.ID, t *Trail)) {
	for _, id := range slices.Clone(s.order) {
		if t, ok := s.trails[id]; ok {
			fn(id, t)
		}
	}
}

func (s *Store) Delete(id entity.ID) {
	if _, ok := s.trails[id]; !ok {
		return
	}
	delete(s.trails, id)
	s.order = slices.DeleteFunc(s.order, func(x entity.ID) bool { return x == id })
}

func (s *Store) Clear() {
	clear(s.trails)
	s.order = s.order[:0]
}
