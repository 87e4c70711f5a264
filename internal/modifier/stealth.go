// internal/modifier/stealth.go
package modifier

import (
	"tank-arena/internal/config"
	"tank-arena/pkg/render"
)

// StealthAmmo hides the host's shots for a fixed number of frames.
type StealthAmmo struct {
	host      Host
	remaining int
}

func NewStealthAmmo(host Host, cfg config.StealthAmmoConfig) *StealthAmmo {
	return &StealthAmmo{host: host, remaining: cfg.Duration}
}

func (m *StealthAmmo) Name() string   { return NameStealthAmmo }
func (m *StealthAmmo) Remaining() int { return m.remaining }

func (m *StealthAmmo) Update(set *Set) {
	m.host.SetStealthAmmo(true)

	m.remaining--
	if m.remaining <= 0 {
		set.Remove(m)
	}
}

func (m *StealthAmmo) Reset() {
	m.host.SetStealthAmmo(false)
}

func (m *StealthAmmo) Draw(World, render.Surface) {}
