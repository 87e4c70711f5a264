// internal/state/arena_state.go
package state

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"tank-arena/internal/arena"
	"tank-arena/internal/config"
	"tank-arena/internal/tank"
	"tank-arena/internal/utils"
	"tank-arena/pkg/geom"
	"tank-arena/pkg/maze"
	"tank-arena/pkg/render"
	"tank-arena/pkg/render/screen"
)

// Controls maps a player to keys.
type Controls struct {
	Left, Right, Forward, Back, Fire ebiten.Key
}

var DefaultControls = []Controls{
	{Left: ebiten.KeyA, Right: ebiten.KeyD, Forward: ebiten.KeyW, Back: ebiten.KeyS, Fire: ebiten.KeyQ},
	{Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Forward: ebiten.KeyArrowUp, Back: ebiten.KeyArrowDown, Fire: ebiten.KeyM},
	{Left: ebiten.KeyJ, Right: ebiten.KeyL, Forward: ebiten.KeyI, Back: ebiten.KeyK, Fire: ebiten.KeyU},
	{Left: ebiten.KeyNumpad4, Right: ebiten.KeyNumpad6, Forward: ebiten.KeyNumpad8, Back: ebiten.KeyNumpad5, Fire: ebiten.KeyNumpad0},
}

// ArenaState plays rounds until the window closes. Entering starts a round
// on a freshly scattered maze, exiting clears it. Players and their kills
// carry over between rounds.
type ArenaState struct {
	sm      *StateMachine
	cfg     *config.Config
	logger  *log.Logger
	rng     *utils.PRNGService
	grid    *maze.Grid
	arena   *arena.Arena
	players []*tank.Player
	tanks   map[*tank.Player]*tank.Tank

	screen   *screen.Screen
	fader    render.TrailFader
	face     font.Face
	endTimer int
	round    int
}

func NewArenaState(sm *StateMachine, cfg *config.Config, players []*tank.Player, rng *utils.PRNGService, logger *log.Logger) *ArenaState {
	if len(players) > len(DefaultControls) {
		panic(fmt.Sprintf("state: at most %d players, got %d", len(DefaultControls), len(players)))
	}
	grid := maze.NewGrid(cfg.Cell.AmtX, cfg.Cell.AmtY, cfg.Cell.Width, cfg.Wall.Stroke)
	return &ArenaState{
		sm:      sm,
		cfg:     cfg,
		logger:  logger,
		rng:     rng,
		grid:    grid,
		arena:   arena.New(cfg, grid, arena.WithLogger(logger), arena.WithRand(rng)),
		players: players,
		tanks:   make(map[*tank.Player]*tank.Tank),
		screen:  screen.NewScreen(),
		fader:   render.TrailFader{Length: cfg.Effects.BulletTrailLength},
		face:    basicfont.Face7x13,
	}
}

func (s *ArenaState) Enter() {
	s.round++
	s.endTimer = config.RoundEndFrames

	s.grid.Clear()
	walls := maze.Scatter(s.grid, s.rng, s.cfg.Wall.OccurrenceRate)

	clear(s.tanks)
	cells := s.rng.Perm(s.grid.Cols() * s.grid.Rows())
	for i, p := range s.players {
		if i >= len(cells) {
			break
		}
		cell, _ := s.grid.Cell(cells[i]%s.grid.Cols(), cells[i]/s.grid.Cols())
		t, err := tank.New(p, cell.Midpoint(), s.rng.Angle(), s.cfg)
		if err != nil {
			s.logger.Error("Failed to spawn tank", "player", p.Name, "err", err)
			continue
		}
		s.tanks[p] = t
		s.arena.AddTank(t)
	}
	s.logger.Info("Round started", "round", s.round, "walls", walls)
	s.arena.Start()
}

func (s *ArenaState) Exit() {
	s.arena.Clear()
}

func (s *ArenaState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.Push(NewPauseState(s.sm, s))
		return
	}

	for i, p := range s.players {
		if t, ok := s.tanks[p]; ok && !t.Destroyed() {
			s.drive(t, DefaultControls[i])
		}
	}

	s.arena.Update()
	s.fader.Fade(s.arena.Trails())

	if len(s.arena.Tanks()) <= 1 && len(s.players) > 1 {
		s.endTimer--
		if s.endTimer <= 0 {
			s.endRound()
		}
	}
}

func (s *ArenaState) drive(t *tank.Tank, c Controls) {
	if ebiten.IsKeyPressed(c.Left) {
		t.Turn(-1)
	}
	if ebiten.IsKeyPressed(c.Right) {
		t.Turn(1)
	}
	if ebiten.IsKeyPressed(c.Forward) {
		t.Move(1, s.arena.Bounds(), s.arena.Walls())
	}
	if ebiten.IsKeyPressed(c.Back) {
		t.Move(-1, s.arena.Bounds(), s.arena.Walls())
	}
	if inpututil.IsKeyJustPressed(c.Fire) {
		if _, err := s.arena.Fire(t); err != nil && !errors.Is(err, arena.ErrNoAmmo) {
			s.logger.Warn("Fire failed", "err", err)
		}
	}
}

func (s *ArenaState) endRound() {
	winner := "nobody"
	if tanks := s.arena.Tanks(); len(tanks) == 1 {
		winner = tanks[0].Player().Name
	}
	s.logger.Info("Round over", "round", s.round, "winner", winner)
	s.Exit()
	s.Enter()
}

func (s *ArenaState) Draw(img *ebiten.Image) {
	img.Fill(config.BackgroundColor)
	s.screen.Bind(img)
	s.arena.Draw(s.screen)
	s.drawHUD(img)
}

func (s *ArenaState) drawHUD(img *ebiten.Image) {
	top := s.grid.Bounds().Height
	s.screen.FillRect(geom.Rect{Y: top, Width: s.grid.Bounds().Width, Height: config.HUDHeight}, render.DarkenColor(config.BackgroundColor))

	x := 10
	for _, p := range s.players {
		line := fmt.Sprintf("%s  kills %d", p.Name, p.Kills)
		if t, ok := s.tanks[p]; ok && !t.Destroyed() {
			line += fmt.Sprintf("  ammo %d", t.Ammo())
			if eq := t.Equipment(); eq != nil {
				line += fmt.Sprintf("  %s x%d", eq.Name, eq.Ammo)
			}
		}
		text.Draw(img, line, s.face, x, int(top)+config.HUDHeight/2+4, config.HUDTextColor)
		x += text.BoundString(s.face, line).Dx() + 30
	}
}
