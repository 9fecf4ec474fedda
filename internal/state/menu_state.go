// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-mars-survival/internal/app"
	"go-mars-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — заставка перед партией.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if start {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"MARS 1984",
		"",
		"move: WASD / joystick",
		"E gather  M miner  B base",
		"SPACE attack  Q switch weapon",
		"F5 save  F9 load  R restart",
		"",
		fmt.Sprintf("rules: %s", m.game.Rules.Name),
		"press SPACE or tap to start",
	}
	y := config.ScreenHeight / 3
	for _, line := range lines {
		b := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-b.Dx())/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
