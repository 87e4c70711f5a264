package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bullet.Speed != 3 || cfg.Bullet.Diameter != 8 || cfg.Bullet.Duration != 360 {
		t.Errorf("bullet defaults = %+v", cfg.Bullet)
	}
	if got := cfg.CollisionStepSize(); got != 5 {
		t.Errorf("CollisionStepSize = %v, want 5", got)
	}
	if !cfg.LaserSightOn("m82") || cfg.LaserSightOn("breaker") {
		t.Errorf("laser sight equipment = %v", cfg.Modifier.LaserSight.OnEquipment)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `{"bullet": {"speed": 4}, "equipment": {"m82": {"penetration_speed_divisor": 2}}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bullet.Speed != 4 {
		t.Errorf("bullet speed = %v, want 4", cfg.Bullet.Speed)
	}
	if cfg.Bullet.Diameter != 8 {
		t.Errorf("bullet diameter = %v, want default 8", cfg.Bullet.Diameter)
	}
	if cfg.Equipment.M82.PenetrationSpeedDivisor != 2 {
		t.Errorf("divisor = %v, want 2", cfg.Equipment.M82.PenetrationSpeedDivisor)
	}
	if cfg.Equipment.M82.Speed != 12 {
		t.Errorf("m82 speed = %v, want default 12", cfg.Equipment.M82.Speed)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"thin walls", `{"wall": {"stroke": 1}}`, ErrInvalidStroke},
		{"zero divisor", `{"equipment": {"m82": {"penetration_speed_divisor": 0}}}`, ErrInvalidDivisor},
		{"empty grid", `{"cell": {"amt_x": 0}}`, ErrInvalidGrid},
		{"frozen bullet", `{"bullet": {"speed": 0}}`, ErrInvalidSpeed},
		{"empty breaker", `{"equipment": {"breaker": {"ammo": 0}}}`, ErrInvalidAmmo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadReportsMissingFileAndBadJSON(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
	if _, err := Load(writeConfig(t, `{"bullet": `)); err == nil {
		t.Error("truncated JSON err = nil")
	}
}
