// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

const (
	HUDHeight = 40
	FPS       = 60

	RoundEndFrames = 60 * 3 // grace period after the last kill
)

var (
	BackgroundColor = color.RGBA{235, 235, 235, 255}
	WallColor       = color.RGBA{60, 60, 60, 255}
	HUDTextColor    = color.RGBA{20, 20, 30, 255}
	PickupColor     = color.RGBA{240, 190, 40, 255}
	TankColors      = []string{"e63946", "1d7fd1", "2a9d8f", "f4a261"}
)

// Config holds every tunable of the simulation. Durations are in frames,
// distances in pixels, speeds in pixels per frame.
type Config struct {
	Cell      CellConfig      `json:"cell"`
	Wall      WallConfig      `json:"wall"`
	Tank      TankConfig      `json:"tank"`
	Bullet    BulletConfig    `json:"bullet"`
	Equipment EquipmentConfig `json:"equipment"`
	Modifier  ModifierConfig  `json:"modifier"`
	Effects   EffectsConfig   `json:"effects"`
	Pickup    PickupConfig    `json:"pickup"`
}

type CellConfig struct {
	Width float64 `json:"width"`
	AmtX  int     `json:"amt_x"`
	AmtY  int     `json:"amt_y"`
}

type WallConfig struct {
	Stroke         float64 `json:"stroke"`
	OccurrenceRate float64 `json:"occurrence_rate"`
}

type TankConfig struct {
	Diameter     float64 `json:"diameter"`
	MoveSpeed    float64 `json:"move_speed"`
	TurnSpeed    float64 `json:"turn_speed"` // degrees per frame
	CannonLength float64 `json:"cannon_length"`
	CannonWidth  float64 `json:"cannon_width"`
	Ammo         int     `json:"ammo"`
}

type BulletConfig struct {
	Speed    float64 `json:"speed"`
	Diameter float64 `json:"diameter"`
	Duration int     `json:"duration"`
}

type EquipmentConfig struct {
	M82     M82Config     `json:"m82"`
	Breaker BreakerConfig `json:"breaker"`
}

type M82Config struct {
	Ammo                    int     `json:"ammo"`
	Diameter                float64 `json:"diameter"`
	Speed                   float64 `json:"speed"`
	PenetrationSpeedDivisor float64 `json:"penetration_speed_divisor"`
	StealthModifier         float64 `json:"stealth_modifier"`
}

type BreakerConfig struct {
	Ammo     int     `json:"ammo"`
	Diameter float64 `json:"diameter"`
	Speed    float64 `json:"speed"`
}

type ModifierConfig struct {
	StealthAmmo StealthAmmoConfig `json:"stealth_ammo"`
	LaserSight  LaserSightConfig  `json:"laser_sight"`
}

type StealthAmmoConfig struct {
	Duration int   `json:"duration"`
	Alpha    uint8 `json:"alpha"`
}

type LaserSightConfig struct {
	Alpha       uint8    `json:"alpha"`
	Width       float64  `json:"width"`
	MaxDistance float64  `json:"max_distance"`
	OnEquipment []string `json:"on_equipment"`
}

type EffectsConfig struct {
	MuzzleSize        float64 `json:"muzzle_size"`  // times the bullet diameter
	MuzzleSpeed       float64 `json:"muzzle_speed"` // px shrink per frame
	BulletTrailAlpha  uint8   `json:"bullet_trail_alpha"`
	BulletTrailLength int     `json:"bullet_trail_length"`
}

// PickupWeight is one entry of the pickup drop table.
type PickupWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type PickupConfig struct {
	Size          float64        `json:"size"`
	SpawnInterval int            `json:"spawn_interval"` // frames
	SpawnChance   float64        `json:"spawn_chance"`
	Max           int            `json:"max"`
	Table         []PickupWeight `json:"table"`
}

// Default returns the tuning the game ships with.
func Default() Config {
	return Config{
		Cell: CellConfig{Width: 55, AmtX: 15, AmtY: 10},
		Wall: WallConfig{Stroke: 6, OccurrenceRate: 0.35},
		Tank: TankConfig{
			Diameter:     20,
			MoveSpeed:    1.5, // has to stay below the wall stroke
			TurnSpeed:    4,
			CannonLength: 18,
			CannonWidth:  3,
			Ammo:         5,
		},
		Bullet: BulletConfig{Speed: 3, Diameter: 8, Duration: 60 * 6},
		Equipment: EquipmentConfig{
			M82: M82Config{
				Ammo:                    3,
				Diameter:                3,
				Speed:                   12,
				PenetrationSpeedDivisor: 3,
				StealthModifier:         0.5,
			},
			Breaker: BreakerConfig{Ammo: 2, Diameter: 3, Speed: 5},
		},
		Modifier: ModifierConfig{
			StealthAmmo: StealthAmmoConfig{Duration: 60 * 10, Alpha: 60},
			LaserSight: LaserSightConfig{
				Alpha:       120,
				Width:       1,
				MaxDistance: 9999,
				OnEquipment: []string{"m82"},
			},
		},
		Effects: EffectsConfig{
			MuzzleSize:        2.5,
			MuzzleSpeed:       1,
			BulletTrailAlpha:  80,
			BulletTrailLength: 25,
		},
		Pickup: PickupConfig{
			Size:          25,
			SpawnInterval: 60 * 5,
			SpawnChance:   0.5,
			Max:           3,
			Table: []PickupWeight{
				{Name: "m82", Weight: 2},
				{Name: "breaker", Weight: 2},
				{Name: "stealth_ammo", Weight: 1},
			},
		},
	}
}

// CollisionStepSize is the largest sweep increment that still cannot step
// over a wall: one pixel less than the wall stroke.
func (c *Config) CollisionStepSize() float64 {
	return c.Wall.Stroke - 1
}

// LaserSightOn reports whether the named equipment grants a laser sight.
func (c *Config) LaserSightOn(equipment string) bool {
	return slices.Contains(c.Modifier.LaserSight.OnEquipment, equipment)
}

var (
	ErrInvalidStroke  = errors.New("config: wall stroke must be greater than 1")
	ErrInvalidGrid    = errors.New("config: cell width and counts must be positive")
	ErrInvalidSpeed   = errors.New("config: projectile speeds must be positive")
	ErrInvalidDivisor = errors.New("config: penetration speed divisor must be at least 1")
	ErrInvalidSize    = errors.New("config: diameters must be positive")
	ErrInvalidAmmo    = errors.New("config: equipment ammo must be positive")
)

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Wall.Stroke <= 1 {
		errs = append(errs, fmt.Errorf("stroke %v: %w", c.Wall.Stroke, ErrInvalidStroke))
	}
	if c.Cell.Width <= 0 || c.Cell.AmtX <= 0 || c.Cell.AmtY <= 0 {
		errs = append(errs, ErrInvalidGrid)
	}
	if c.Bullet.Speed <= 0 || c.Equipment.M82.Speed <= 0 || c.Equipment.Breaker.Speed <= 0 {
		errs = append(errs, ErrInvalidSpeed)
	}
	if c.Equipment.M82.PenetrationSpeedDivisor < 1 {
		errs = append(errs, fmt.Errorf("divisor %v: %w", c.Equipment.M82.PenetrationSpeedDivisor, ErrInvalidDivisor))
	}
	if c.Bullet.Diameter <= 0 || c.Tank.Diameter <= 0 {
		errs = append(errs, ErrInvalidSize)
	}
	if c.Equipment.M82.Ammo <= 0 || c.Equipment.Breaker.Ammo <= 0 {
		errs = append(errs, ErrInvalidAmmo)
	}
	return errors.Join(errs...)
}
