// cmd/arena/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tank-arena/internal/config"
	"tank-arena/internal/state"
	"tank-arena/internal/tank"
	"tank-arena/internal/utils"
)

type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a JSON tuning file")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	players := flag.Int("players", 2, "number of local players")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "arena",
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", "path", *configPath, "err", err)
	}
	if *players < 1 || *players > len(state.DefaultControls) || *players > len(config.TankColors) {
		log.Fatal("Unsupported player count", "players", *players)
	}

	if *pprofAddr != "" {
		go func() {
			log.Warn("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	roster := make([]*tank.Player, *players)
	for i := range roster {
		roster[i] = tank.NewPlayer(fmt.Sprintf("P%d", i+1), config.TankColors[i])
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewArenaState(sm, &cfg, roster, utils.NewPRNGService(*seed), logger))

	app := &AppGame{
		stateMachine: sm,
		width:        int(cfg.Cell.Width) * cfg.Cell.AmtX,
		height:       int(cfg.Cell.Width)*cfg.Cell.AmtY + config.HUDHeight,
	}
	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Tank Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal("Game stopped", "err", err)
	}
}
