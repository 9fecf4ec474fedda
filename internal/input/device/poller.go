// Package device читает клавиатуру, мышь и касания через ebiten.
package device

import (
	"time"

	"go-mars-survival/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Порядок привязок задаёт порядок действий внутри кадра.
var keyActions = []struct {
	key    ebiten.Key
	action input.Action
}{
	{ebiten.KeyE, input.Gather},
	{ebiten.KeyM, input.BuildMiner},
	{ebiten.KeyB, input.BuildBase},
	{ebiten.KeySpace, input.Attack},
	{ebiten.KeyQ, input.SwitchWeapon},
	{ebiten.KeyP, input.TogglePause},
	{ebiten.KeyEscape, input.TogglePause},
}

// Poller снимает состояние клавиатуры, мыши и касаний один раз за кадр.
type Poller struct {
	Layout input.Layout

	attackTaps input.TapTracker
	touchIDs   []ebiten.TouchID
	pressed    []ebiten.TouchID
	stick      input.Vector
}

func NewPoller(layout input.Layout) *Poller {
	return &Poller{Layout: layout}
}

// Stick возвращает последний вектор джойстика (для отрисовки рукоятки).
func (p *Poller) Stick() input.Vector {
	return p.stick
}

// Poll возвращает вектор движения и действия за этот кадр.
func (p *Poller) Poll() (input.Vector, []input.Action) {
	var actions []input.Action

	for _, b := range keyActions {
		if inpututil.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}

	vec := p.keyboardVector()

	// Касания: первое касание в зоне джойстика задаёт направление.
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if p.Layout.InJoystick(x, y) {
			vec = p.Layout.Stick(x, y)
			break
		}
	}
	p.pressed = inpututil.AppendJustPressedTouchIDs(p.pressed[:0])
	for _, id := range p.pressed {
		x, y := ebiten.TouchPosition(id)
		actions = p.press(x, y, actions)
	}

	// Мышь работает как палец.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p.Layout.InJoystick(x, y) {
			vec = p.Layout.Stick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		actions = p.press(x, y, actions)
	}

	p.stick = vec
	return vec, actions
}

func (p *Poller) press(x, y int, actions []input.Action) []input.Action {
	b, ok := p.Layout.ButtonAt(x, y)
	if !ok {
		return actions
	}
	actions = append(actions, b.Action)
	if b.Action == input.Attack && p.attackTaps.Tap(time.Now()) {
		actions = append(actions, input.SwitchWeapon)
	}
	return actions
}

func (p *Poller) keyboardVector() input.Vector {
	var v input.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y++
	}
	return v
}
