// internal/state/game_state.go
package state

import (
	"context"
	"time"

	"go-mars-survival/internal/app"
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/input"
	"go-mars-survival/internal/input/device"
	"go-mars-survival/internal/ui"
	"go-mars-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const storeTimeout = 5 * time.Second

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	poller   *device.Poller
	renderer *render.GridRenderer
	hud      *ui.HUD
	toast    *ui.Toast
	controls *ui.Controls
	snap     app.Snapshot
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		TerrainColors:   config.TerrainColors,
		ResourceColors:  config.ResourceColors,
		MinerColor:      config.MinerColor,
		BaseColor:       config.BaseColor,
		ChimneyColor:    config.ChimneyColor,
		DomeColor:       config.DomeColor,
		PlayerColor:     config.PlayerColor,
		HelmetColor:     config.HelmetColor,
		EnemyColor:      config.EnemyColor,
		EnemyHealthBar:  config.EnemyHealthBar,
		ProjectileColor: config.ProjectileColor,
		HitEffectColor:  config.HitEffectColor,
		SwordColor:      config.SwordColor,
		GunColor:        config.GunColor,
	}

	layout := input.DefaultLayout(config.ScreenWidth, config.ScreenHeight, config.JoystickMaxDist)
	face := basicfont.Face7x13
	toast := ui.NewToast()

	return &GameState{
		sm:       sm,
		game:     game,
		poller:   device.NewPoller(layout),
		renderer: render.NewGridRenderer(mapColors, config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(face, toast),
		toast:    toast,
		controls: ui.NewControls(layout, face),
		snap:     game.Snapshot(),
	}
}

func (g *GameState) Enter() {
	g.renderer.RenderMapImage(g.game.ECS.Grid)
}

func (g *GameState) Update(deltaTime float64) {
	if g.handleCommands() {
		return
	}

	vec, actions := g.poller.Poll()
	if !ebiten.IsFocused() {
		actions = append(actions, input.Pause)
	}
	report := g.game.Tick(vec, actions)

	g.snap = g.game.Snapshot()
	g.toast.Sync(g.snap.Toast)
	if report.Processed {
		g.toast.Update(1.0 / config.TicksPerSec)
	}

	if g.snap.Session.Phase == component.Paused {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

// handleCommands обрабатывает команды вне симуляции: сохранение, загрузку и рестарт.
// Возвращает true, если кадр симуляции нужно пропустить.
func (g *GameState) handleCommands() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := g.game.Save(ctx); err != nil {
			log.WithError(err).Error("save failed")
		}
		return false
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		ok, err := g.game.Load(ctx)
		if err != nil {
			log.WithError(err).Error("load failed")
			return false
		}
		if !ok {
			log.Info("no saved session")
			return false
		}
		g.refresh()
		return true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.game.Restart(0); err != nil {
			log.WithError(err).Error("restart failed")
			return false
		}
		g.refresh()
		return true
	}
	return false
}

func (g *GameState) refresh() {
	g.renderer.RenderMapImage(g.game.ECS.Grid)
	g.snap = g.game.Snapshot()
	g.toast.Sync(g.snap.Toast)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snap)
	g.controls.Draw(screen, g.poller.Stick())
	g.hud.Draw(screen, &g.snap)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
