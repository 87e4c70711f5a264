package modifier

import (
	"testing"

	"tank-arena/internal/config"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
)

func TestLaserSightTrace(t *testing.T) {
	cfg := config.Default().Modifier.LaserSight
	host := &fakeHost{pos: geom.Point{X: 20, Y: 20}, equipment: "m82"}

	open := gridWorld{grid: maze.NewGrid(3, 3, 55, 6)}
	end, ok := NewLaserSight(host, cfg).Trace(open)
	if !ok || end != (geom.Point{X: 170, Y: 20}) {
		t.Errorf("open trace = %v, %v; want first point past the edge", end, ok)
	}

	walled := gridWorld{grid: maze.NewGrid(3, 3, 55, 6)}
	if _, err := walled.grid.SetWall(0, 0, maze.Right); err != nil {
		t.Fatal(err)
	}
	end, ok = NewLaserSight(host, cfg).Trace(walled)
	if !ok || end != (geom.Point{X: 55, Y: 20}) {
		t.Errorf("walled trace = %v, %v; want (55, 20)", end, ok)
	}
}

func TestLaserSightNeedsEquipment(t *testing.T) {
	tests := []struct {
		equipment string
		keep      bool
	}{
		{"m82", true},
		{"breaker", false},
		{"", false},
	}
	for _, tt := range tests {
		host := &fakeHost{equipment: tt.equipment}
		var set Set
		set.Add(NewLaserSight(host, config.Default().Modifier.LaserSight))
		set.Update()
		if got := set.Has(NameLaserSight); got != tt.keep {
			t.Errorf("equipment %q: attached = %v, want %v", tt.equipment, got, tt.keep)
		}
	}
}
