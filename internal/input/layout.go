package input

import (
	"image"
	"time"
)

// DoubleTapWindow — два касания кнопки атаки быстрее этого переключают оружие.
const DoubleTapWindow = 300 * time.Millisecond

// Button — экранная кнопка, привязанная к действию.
type Button struct {
	Label  string
	Rect   image.Rectangle
	Action Action
}

// Layout описывает расположение джойстика и кнопок на экране.
type Layout struct {
	JoystickCenter image.Point
	JoystickRadius int
	MaxDist        float64
	Buttons        []Button
}

// DefaultLayout — раскладка под экран width × height: джойстик слева внизу,
// кнопки действий столбиком справа.
func DefaultLayout(width, height int, maxDist float64) Layout {
	const bw, bh, gap = 84, 40, 8
	x := width - bw - 12
	y := height - 5*(bh+gap) - 12
	buttons := []Button{
		{Label: "GATHER", Action: Gather},
		{Label: "MINER", Action: BuildMiner},
		{Label: "BASE", Action: BuildBase},
		{Label: "ATTACK", Action: Attack},
		{Label: "PAUSE", Action: TogglePause},
	}
	for i := range buttons {
		top := y + i*(bh+gap)
		buttons[i].Rect = image.Rect(x, top, x+bw, top+bh)
	}
	return Layout{
		JoystickCenter: image.Pt(80, height-100),
		JoystickRadius: 60,
		MaxDist:        maxDist,
		Buttons:        buttons,
	}
}

// ButtonAt возвращает кнопку под точкой.
func (l Layout) ButtonAt(x, y int) (Button, bool) {
	pt := image.Pt(x, y)
	for _, b := range l.Buttons {
		if pt.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// InJoystick сообщает, что точка внутри зоны джойстика.
func (l Layout) InJoystick(x, y int) bool {
	dx := x - l.JoystickCenter.X
	dy := y - l.JoystickCenter.Y
	return dx*dx+dy*dy <= l.JoystickRadius*l.JoystickRadius
}

// Stick переводит точку касания в вектор джойстика.
func (l Layout) Stick(x, y int) Vector {
	return StickVector(float64(x-l.JoystickCenter.X), float64(y-l.JoystickCenter.Y), l.MaxDist)
}

// TapTracker распознаёт двойное касание.
type TapTracker struct {
	last time.Time
}

// Tap регистрирует касание и возвращает true, если оно второе подряд
// в пределах DoubleTapWindow.
func (t *TapTracker) Tap(now time.Time) bool {
	gap := now.Sub(t.last)
	double := !t.last.IsZero() && gap > 0 && gap < DoubleTapWindow
	t.last = now
	return double
}
