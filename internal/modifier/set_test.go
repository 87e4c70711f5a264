package modifier

import (
	"errors"
	"testing"

	"tank-arena/internal/config"
	"tank-arena/pkg/render"
)

func TestStealthAmmoExpires(t *testing.T) {
	host := &fakeHost{}
	var set Set
	var removed []string
	set.OnRemove = func(m Modifier) { removed = append(removed, m.Name()) }
	set.Add(NewStealthAmmo(host, config.StealthAmmoConfig{Duration: 3, Alpha: 60}))

	for i := 0; i < 2; i++ {
		set.Update()
		if !host.stealth || set.Len() != 1 {
			t.Fatalf("frame %d: stealth=%v len=%d", i+1, host.stealth, set.Len())
		}
	}
	set.Update()
	if host.stealth {
		t.Error("stealth flag still set after expiry")
	}
	if set.Len() != 0 || set.Has(NameStealthAmmo) {
		t.Errorf("modifier still attached")
	}
	if len(removed) != 1 || removed[0] != NameStealthAmmo {
		t.Errorf("OnRemove calls = %v", removed)
	}
}

// remover takes another modifier out of the set from inside Update.
type remover struct {
	victim Modifier
	ran    int
}

func (r *remover) Name() string               { return "remover" }
func (r *remover) Update(set *Set)            { r.ran++; set.Remove(r.victim) }
func (r *remover) Draw(World, render.Surface) {}

func TestSetRemovalDuringUpdateSkipsNothing(t *testing.T) {
	host := &fakeHost{}
	var set Set
	a := NewStealthAmmo(host, config.StealthAmmoConfig{Duration: 1})
	b := &remover{}
	c := NewStealthAmmo(host, config.StealthAmmoConfig{Duration: 100})
	b.victim = c
	set.Add(a)
	set.Add(b)
	set.Add(c)

	set.Update()

	if b.ran != 1 {
		t.Errorf("remover ran %d times, want 1", b.ran)
	}
	if c.Remaining() != 100 {
		t.Errorf("removed modifier still updated: remaining %d", c.Remaining())
	}
	if set.Len() != 1 || !set.Has("remover") {
		t.Errorf("len = %d, want only the remover left", set.Len())
	}
}

func TestSetClearResets(t *testing.T) {
	host := &fakeHost{}
	var set Set
	set.Add(NewStealthAmmo(host, config.StealthAmmoConfig{Duration: 10}))
	set.Update()
	set.Clear()
	if host.stealth || set.Len() != 0 {
		t.Errorf("stealth=%v len=%d after Clear", host.stealth, set.Len())
	}
}

func TestNewLooksUpPickups(t *testing.T) {
	cfg := config.Default()
	m, err := New(NameStealthAmmo, &fakeHost{}, &cfg)
	if err != nil {
		t.Fatalf("New(stealth_ammo): %v", err)
	}
	if s, ok := m.(*StealthAmmo); !ok || s.Remaining() != 600 {
		t.Errorf("New(stealth_ammo) = %#v", m)
	}
	if _, err := New(NameLaserSight, &fakeHost{}, &cfg); !errors.Is(err, ErrUnknownModifier) {
		t.Errorf("New(laser_sight) err = %v, want ErrUnknownModifier", err)
	}
}
