// internal/tank/tank.go
package tank

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"tank-arena/internal/config"
	"tank-arena/internal/modifier"
	"tank-arena/internal/projectile"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
)

// ErrNoEquipmentAmmo rejects equipment that would arrive empty.
var ErrNoEquipmentAmmo = errors.New("tank: equipment has no ammo")

// Equipment replaces the standard bullet until its ammo runs out.
type Equipment struct {
	Name string
	Ammo int
}

// Tank is a player's vehicle. It fires projectiles, hosts modifiers and is
// destroyed by a single hit.
type Tank struct {
	player    *Player
	pos       geom.Point
	facing    float64 // radians
	color     color.RGBA
	ammo      int
	equipment *Equipment
	stealth   bool
	destroyed bool
	modifiers modifier.Set
	cfg       *config.Config
}

func New(player *Player, pos geom.Point, facing float64, cfg *config.Config) (*Tank, error) {
	clr, err := render.ParseHex(player.Color)
	if err != nil {
		return nil, fmt.Errorf("tank for %s: %w", player.Name, err)
	}
	return &Tank{
		player: player,
		pos:    pos,
		facing: facing,
		color:  clr,
		ammo:   cfg.Tank.Ammo,
		cfg:    cfg,
	}, nil
}

func (t *Tank) Player() *Player          { return t.player }
func (t *Tank) Position() geom.Point     { return t.pos }
func (t *Tank) Facing() float64          { return t.facing }
func (t *Tank) Diameter() float64        { return t.cfg.Tank.Diameter }
func (t *Tank) Color() color.RGBA        { return t.color }
func (t *Tank) Ammo() int                { return t.ammo }
func (t *Tank) StealthAmmo() bool        { return t.stealth }
func (t *Tank) SetStealthAmmo(on bool)   { t.stealth = on }
func (t *Tank) Destroyed() bool          { return t.destroyed }
func (t *Tank) Modifiers() *modifier.Set { return &t.modifiers }
func (t *Tank) Equipment() *Equipment    { return t.equipment }
func (t *Tank) HandleHit()               { t.destroyed = true }

// CannonTip is where projectiles spawn.
func (t *Tank) CannonTip() geom.Point {
	return t.pos.Add(geom.OffsetPoint(t.cfg.Tank.CannonLength, t.facing))
}

// Owner returns the scoring player, or nil for an unowned tank.
func (t *Tank) Owner() projectile.Scorer {
	if t.player == nil {
		return nil
	}
	return t.player
}

// ReturnAmmo gives back one standard round when a bullet is gone.
func (t *Tank) ReturnAmmo() {
	t.ammo++
}

// TakeAmmo uses one standard round.
func (t *Tank) TakeAmmo() bool {
	if t.ammo <= 0 {
		return false
	}
	t.ammo--
	return true
}

func (t *Tank) EquipmentName() (string, bool) {
	if t.equipment == nil {
		return "", false
	}
	return t.equipment.Name, true
}

// Equip hands the tank a piece of equipment with its full ammo and attaches
// a laser sight when the equipment comes with one.
func (t *Tank) Equip(kind projectile.Kind) error {
	var ammo int
	switch kind {
	case projectile.KindM82:
		ammo = t.cfg.Equipment.M82.Ammo
	case projectile.KindBreaker:
		ammo = t.cfg.Equipment.Breaker.Ammo
	default:
		return fmt.Errorf("equip %q: %w", kind, projectile.ErrUnknownKind)
	}
	if ammo <= 0 {
		return fmt.Errorf("equip %q: %w", kind, ErrNoEquipmentAmmo)
	}
	t.equipment = &Equipment{Name: string(kind), Ammo: ammo}

	if t.cfg.LaserSightOn(string(kind)) && !t.modifiers.Has(modifier.NameLaserSight) {
		t.modifiers.Add(modifier.NewLaserSight(t, t.cfg.Modifier.LaserSight))
	}
	return nil
}

// UseEquipment spends one equipment round; the equipment is dropped with its
// last round. Empty equipment is dropped without firing.
func (t *Tank) UseEquipment() (projectile.Kind, bool) {
	if t.equipment == nil {
		return "", false
	}
	if t.equipment.Ammo <= 0 {
		t.equipment = nil
		return "", false
	}
	kind := projectile.Kind(t.equipment.Name)
	t.equipment.Ammo--
	if t.equipment.Ammo == 0 {
		t.equipment = nil
	}
	return kind, true
}

// Turn rotates by one frame of turn speed; dir is -1 or 1.
func (t *Tank) Turn(dir float64) {
	t.facing = geom.NormalizeAngle(t.facing + dir*t.cfg.Tank.TurnSpeed*math.Pi/180)
}

// Move drives one frame forward (dir 1) or backward (dir -1). The move is
// refused if the hull would leave the arena or overlap a wall.
func (t *Tank) Move(dir float64, bounds geom.Bounds, walls []*maze.Wall) bool {
	next := t.pos.Add(geom.OffsetPoint(dir*t.cfg.Tank.MoveSpeed, t.facing))
	r := t.Diameter() / 2
	if next.X-r < 0 || next.Y-r < 0 || next.X+r > bounds.Width || next.Y+r > bounds.Height {
		return false
	}
	if slices.ContainsFunc(walls, func(w *maze.Wall) bool { return circleHitsRect(next, r, w.Rect()) }) {
		return false
	}
	t.pos = next
	return true
}

func circleHitsRect(c geom.Point, r float64, rect geom.Rect) bool {
	nearest := geom.Point{
		X: max(rect.X, min(c.X, rect.X+rect.Width)),
		Y: max(rect.Y, min(c.Y, rect.Y+rect.Height)),
	}
	return geom.Distance(c, nearest) < r
}

// Draw paints the hull and the cannon.
func (t *Tank) Draw(s render.Surface) {
	s.FillCircle(t.pos, t.Diameter(), t.color, 255)
	s.StrokeLine(t.pos, t.CannonTip(), t.cfg.Tank.CannonWidth, render.DarkenColor(t.color), 255)
}

var (
	_ projectile.Shooter = (*Tank)(nil)
	_ projectile.Target  = (*Tank)(nil)
	_ modifier.Host      = (*Tank)(nil)
)
