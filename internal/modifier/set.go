// internal/modifier/set.go
package modifier

import (
	"slices"

	"tank-arena/pkg/render"
)

// Set holds the modifiers of one tank. Duplicates are allowed. Removal during
// Update is deferred until the pass is over.
type Set struct {
	items    []Modifier
	removed  map[Modifier]bool
	updating bool

	// OnRemove, if set, is called for every modifier taken out of the set.
	OnRemove func(Modifier)
}

func (s *Set) Add(m Modifier) {
	s.items = append(s.items, m)
}

// Remove resets m if it needs it and detaches it.
func (s *Set) Remove(m Modifier) {
	if !slices.Contains(s.items, m) || s.removed[m] {
		return
	}
	if r, ok := m.(Resetter); ok {
		r.Reset()
	}
	if s.OnRemove != nil {
		s.OnRemove(m)
	}
	if s.updating {
		if s.removed == nil {
			s.removed = make(map[Modifier]bool)
		}
		s.removed[m] = true
		return
	}
	s.items = slices.DeleteFunc(s.items, func(x Modifier) bool { return x == m })
}

// Update runs every modifier once, then drops the ones removed meanwhile.
func (s *Set) Update() {
	s.updating = true
	for _, m := range s.items {
		if !s.removed[m] {
			m.Update(s)
		}
	}
	s.updating = false

	if len(s.removed) > 0 {
		s.items = slices.DeleteFunc(s.items, func(x Modifier) bool { return s.removed[x] })
		clear(s.removed)
	}
}

func (s *Set) Draw(w World, surf render.Surface) {
	for _, m := range s.items {
		m.Draw(w, surf)
	}
}

// Has reports whether a modifier with the given name is attached.
func (s *Set) Has(name string) bool {
	return slices.ContainsFunc(s.items, func(m Modifier) bool { return m.Name() == name })
}

func (s *Set) Len() int {
	return len(s.items)
}

// Clear removes every modifier, resetting each.
func (s *Set) Clear() {
	for _, m := range slices.Clone(s.items) {
		s.Remove(m)
	}
}
