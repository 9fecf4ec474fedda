// internal/ui/toast.go
package ui

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Toast плавно гасит сообщение о смене оружия. Длительность берётся
// из счётчика кадров сообщения, так что надпись гаснет ровно к его концу.
type Toast struct {
	Text  string
	alpha float32
	tween *gween.Tween
	last  int
}

func NewToast() *Toast {
	return &Toast{}
}

// Sync сверяется со снимком: новое сообщение перезапускает затухание.
func (t *Toast) Sync(s component.Toast) {
	if s.Active() && s.Timer > t.last {
		t.Text = s.Text
		t.alpha = 1
		t.tween = gween.New(1, 0, float32(s.Timer)/config.TicksPerSec, ease.InQuad)
	}
	if !s.Active() {
		t.tween = nil
		t.alpha = 0
	}
	t.last = s.Timer
}

// Update продвигает затухание на dt секунд.
func (t *Toast) Update(dt float32) {
	if t.tween == nil {
		return
	}
	a, done := t.tween.Update(dt)
	t.alpha = a
	if done {
		t.tween = nil
		t.alpha = 0
	}
}

// Alpha — текущая непрозрачность надписи.
func (t *Toast) Alpha() float32 {
	return t.alpha
}
