// internal/ui/controls.go
package ui

import (
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/input"
	"go-mars-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Controls рисует экранный джойстик и кнопки действий.
type Controls struct {
	Layout   input.Layout
	fontFace font.Face
}

func NewControls(layout input.Layout, face font.Face) *Controls {
	return &Controls{Layout: layout, fontFace: face}
}

// Draw рисует джойстик с рукояткой в положении stick и кнопки.
func (c *Controls) Draw(screen *ebiten.Image, stick input.Vector) {
	center := c.Layout.JoystickCenter
	cx, cy := float32(center.X), float32(center.Y)
	r := float32(c.Layout.JoystickRadius)
	vector.DrawFilledCircle(screen, cx, cy, r, config.OverlayColor, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, config.TextLightColor, true)

	reach := float32(c.Layout.MaxDist)
	vector.DrawFilledCircle(screen, cx+float32(stick.X)*reach, cy+float32(stick.Y)*reach, r/3,
		render.WithAlpha(config.TextLightColor, 0.7), true)

	for _, b := range c.Layout.Buttons {
		x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
		w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, config.OverlayColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, config.TextLightColor, false)

		bounds := text.BoundString(c.fontFace, b.Label)
		tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
		text.Draw(screen, b.Label, c.fontFace, tx, ty, config.TextLightColor)
	}
}
