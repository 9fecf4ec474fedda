// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"go-mars-survival/internal/app"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/persistence"
	"go-mars-survival/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// maxDeltaTime ограничивает шаг после долгой паузы окна.
const maxDeltaTime = 0.1

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// loadRules принимает имя пресета или путь к YAML.
func loadRules(arg string) (config.Rules, error) {
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return config.LoadRules(arg)
	}
	return config.Preset(arg)
}

func main() {
	seed := flag.Int64("seed", 0, "map seed, 0 for a random one")
	rulesArg := flag.String("rules", "full", "rules preset (full, relaxed) or path to a YAML file")
	storeArg := flag.String("store", "mars1984_save.json", "save target: JSON file path, postgres:// DSN or empty for memory")
	menu := flag.Bool("menu", true, "start from the title screen")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	rules, err := loadRules(*rulesArg)
	if err != nil {
		log.WithError(err).Fatal("invalid rules")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := persistence.Open(ctx, *storeArg)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("failed to open save storage")
	}

	game, err := app.NewGame(app.Options{Seed: *seed, Rules: rules, Store: store})
	if err != nil {
		log.WithError(err).Fatal("failed to start session")
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.WithError(err).Warn("failed to close storage")
		}
	}()

	sm := state.NewStateMachine() // Создаём машину состояний
	if *menu {
		sm.SetState(state.NewMenuState(sm, game))
	} else {
		sm.SetState(state.NewGameState(sm, game))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Mars 1984")
	if err := ebiten.RunGame(appGame); err != nil {
		log.WithError(err).Error("game loop stopped")
	}
}
