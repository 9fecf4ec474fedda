// internal/input/input.go
package input

import (
	"fmt"
	"math"
)

// Vector — направление джойстика, каждая компонента в [-1, 1].
type Vector struct {
	X, Y float64
}

// IsZero сообщает, что джойстик в покое.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Action — дискретное действие игрока за кадр.
type Action uint8

const (
	Gather Action = iota
	BuildMiner
	BuildBase
	Attack
	SwitchWeapon
	TogglePause
	Pause
	Resume
)

var actionNames = [...]string{"gather", "buildMiner", "buildBase", "attack", "switchWeapon", "togglePause", "pause", "resume"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// IsControl сообщает, что действие управляет паузой и должно
// обрабатываться даже когда симуляция остановлена.
func (a Action) IsControl() bool {
	return a == TogglePause || a == Pause || a == Resume
}

// StickVector переводит смещение пальца от центра джойстика в вектор.
// Смещение длиннее maxDist обрезается до окружности.
func StickVector(dx, dy, maxDist float64) Vector {
	if maxDist <= 0 {
		return Vector{}
	}
	dist := math.Hypot(dx, dy)
	if dist > maxDist {
		dx = dx / dist * maxDist
		dy = dy / dist * maxDist
	}
	return Vector{X: dx / maxDist, Y: dy / maxDist}
}
