// internal/modifier/modifier.go
package modifier

import (
	"errors"
	"fmt"
	"image/color"

	"tank-arena/internal/config"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

const (
	NameStealthAmmo = "stealth_ammo"
	NameLaserSight  = "laser_sight"
)

var ErrUnknownModifier = errors.New("modifier: unknown modifier")

// Host is the tank a modifier is attached to.
type Host interface {
	Position() geom.Point
	Facing() float64
	CannonTip() geom.Point
	Color() color.RGBA
	SetStealthAmmo(on bool)
	// EquipmentName reports the held equipment, if any.
	EquipmentName() (string, bool)
}

// World is the geometry a modifier effect can look at.
type World interface {
	Bounds() geom.Bounds
	Walls() []*maze.Wall
	StepSize() float64
}

// Modifier is a timed or conditional effect on a tank. Update runs once per
// frame and may remove the modifier from its set.
type Modifier interface {
	Name() string
	Update(set *Set)
	Draw(w World, s render.Surface)
}

// Resetter is implemented by modifiers that changed their host and must undo
// it when removed.
type Resetter interface {
	Reset()
}

// New builds a pickup modifier by name. The laser sight only comes with
// equipment and is not available here.
func New(name string, host Host, cfg *config.Config) (Modifier, error) {
	switch name {
	case NameStealthAmmo:
		return NewStealthAmmo(host, cfg.Modifier.StealthAmmo), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
}
