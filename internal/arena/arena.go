// internal/arena/arena.go
package arena

import (
	"github.com/charmbracelet/log"

	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/internal/event"
	"tank-arena/internal/modifier"
	"tank-arena/internal/projectile"
	"tank-arena/internal/tank"
	"tank-arena/internal/trail"
	"tank-arena/internal/utils"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
)

// Arena is the simulation context of one game: it owns the live projectiles,
// the tanks, the trail store and the pickups, and runs the per-frame pass.
// The maze grid is shared with the caller.
type Arena struct {
	cfg    *config.Config
	grid   *maze.Grid
	ids    *entity.Registry
	trails *trail.Store
	events *event.Dispatcher
	logger *log.Logger
	rng    *utils.PRNGService

	tanks       []*tank.Tank
	projectiles []projectile.Projectile
	pickups     []Pickup

	frame   int
	running bool
	current entity.ID // projectile being simulated, for event attribution
}

type Option func(*Arena)

func WithLogger(l *log.Logger) Option {
	return func(a *Arena) { a.logger = l }
}

func WithDispatcher(d *event.Dispatcher) Option {
	return func(a *Arena) { a.events = d }
}

func WithRand(r *utils.PRNGService) Option {
	return func(a *Arena) { a.rng = r }
}

func New(cfg *config.Config, grid *maze.Grid, opts ...Option) *Arena {
	if cfg == nil || grid == nil {
		panic("arena: config and grid cannot be nil")
	}
	a := &Arena{
		cfg:    cfg,
		grid:   grid,
		ids:    entity.NewRegistry(),
		trails: trail.NewStore(),
		events: event.NewDispatcher(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = utils.NewPRNGService(0)
	}
	a.events.SubscribeAll(&logListener{logger: a.logger})
	return a
}

// Start begins a round.
func (a *Arena) Start() {
	a.running = true
	a.frame = 0
	a.logger.Info("Arena started", "tanks", len(a.tanks), "walls", len(a.grid.Walls()))
	a.events.Dispatch(event.Event{Type: event.ArenaStarted, Data: len(a.tanks)})
}

// Clear ends the round and drops everything the arena owns. Walls stay with
// the grid.
func (a *Arena) Clear() {
	for _, t := range a.tanks {
		t.Modifiers().Clear()
	}
	a.tanks = nil
	a.projectiles = nil
	a.pickups = nil
	a.trails.Clear()
	a.ids.Reset()
	a.running = false
	a.logger.Info("Arena cleared")
	a.events.Dispatch(event.Event{Type: event.ArenaCleared})
}

func (a *Arena) Running() bool { return a.running }

// AddTank puts a tank into play.
func (a *Arena) AddTank(t *tank.Tank) {
	t.Modifiers().OnRemove = func(m modifier.Modifier) {
		a.events.Dispatch(event.Event{
			Type: event.ModifierRemoved,
			Data: event.ModifierData{Name: m.Name(), Owner: tankName(t)},
		})
	}
	a.tanks = append(a.tanks, t)
}

func (a *Arena) Config() *config.Config               { return a.cfg }
func (a *Arena) Events() *event.Dispatcher            { return a.events }
func (a *Arena) Grid() *maze.Grid                     { return a.grid }
func (a *Arena) Tanks() []*tank.Tank                  { return a.tanks }
func (a *Arena) Projectiles() []projectile.Projectile { return a.projectiles }
func (a *Arena) Pickups() []Pickup                    { return a.pickups }
func (a *Arena) Trails() *trail.Store                 { return a.trails }
func (a *Arena) Bounds() geom.Bounds                  { return a.grid.Bounds() }
func (a *Arena) Walls() []*maze.Wall                  { return a.grid.Walls() }
func (a *Arena) StepSize() float64                    { return a.cfg.CollisionStepSize() }

// RemoveWall takes a wall out of the maze. Projectiles penetrating it forget
// it, and it is gone for every collision check after this call.
func (a *Arena) RemoveWall(w *maze.Wall) bool {
	if !a.grid.Remove(w) {
		return false
	}
	for _, p := range a.projectiles {
		if f, ok := p.(wallForgetter); ok {
			f.ForgetWall(w)
		}
	}
	a.events.Dispatch(event.Event{
		Type: event.WallDestroyed,
		Data: event.WallData{Col: w.Col, Row: w.Row, Side: w.Side.String(), Projectile: a.current},
	})
	return true
}

type wallForgetter interface {
	ForgetWall(w *maze.Wall)
}

func tankName(t *tank.Tank) string {
	if t == nil || t.Player() == nil {
		return "unowned"
	}
	return t.Player().Name
}

var (
	_ projectile.World = (*Arena)(nil)
	_ modifier.World   = (*Arena)(nil)
)
