// pkg/render/trails.go
package render

import (
	"tank-arena/internal/entity"
	"tank-arena/internal/trail"
)

// TrailFader prunes the trail store once per frame. Live trails are cut to
// Length points; dead trails lose their oldest point every frame and are
// deleted once empty.
type TrailFader struct {
	Length int
}

func (f TrailFader) Fade(store *trail.Store) {
	store.Each(func(id entity.ID, t *trail.Trail) {
		if f.Length > 0 && len(t.Points) > f.Length {
			t.Points = t.Points[len(t.Points)-f.Length:]
		}
		if t.Dead && len(t.Points) > 0 {
			t.Points = t.Points[1:]
		}
		if t.Dead && len(t.Points) == 0 {
			store.Delete(id)
		}
	})
}

// PaintTrails draws every trail point as a dot, oldest first, with alpha
// rising linearly from the tail to maxAlpha at the head.
func PaintTrails(s Surface, store *trail.Store, maxAlpha uint8) {
	store.Each(func(_ entity.ID, t *trail.Trail) {
		n := len(t.Points)
		for i, p := range t.Points {
			alpha := ScaleAlpha(maxAlpha, float64(i+1)/float64(n))
			s.FillCircle(p, t.Look.Diameter, t.Look.Color, alpha)
		}
	})
}
