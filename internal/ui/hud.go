// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-mars-survival/internal/app"
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/pkg/gridmap"
	"go-mars-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	barWidth  = 120
	barHeight = 10
	hudMargin = 10
	hudLine   = 16
)

// HUD — верхняя панель: полоски здоровья и энергии, запасы и статистика партии.
type HUD struct {
	fontFace font.Face
	toast    *Toast
}

func NewHUD(face font.Face, toast *Toast) *HUD {
	return &HUD{fontFace: face, toast: toast}
}

// Draw рисует панель и, если нужно, затемнение паузы или конца игры.
func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	p := &snap.Player
	x, y := float32(hudMargin), float32(hudMargin)

	drawBar(screen, x, y, p.Health/p.MaxHealth, config.HealthBarColor)
	h.label(screen, fmt.Sprintf("HP %3.0f", p.Health), int(x)+barWidth+6, int(y)+barHeight)
	y += hudLine
	drawBar(screen, x, y, p.Energy/p.MaxEnergy, config.EnergyBarColor)
	h.label(screen, fmt.Sprintf("EN %3.0f", p.Energy), int(x)+barWidth+6, int(y)+barHeight)
	y += hudLine + 4

	inv := p.Inventory
	h.label(screen, fmt.Sprintf("Fe %d  Si %d  RM %d",
		inv.Count(gridmap.Iron), inv.Count(gridmap.Silicon), inv.Count(gridmap.RareMetal)), int(x), int(y)+10)
	y += hudLine

	h.label(screen, fmt.Sprintf("Sol %d  Wave %d  Kills %d", snap.Session.Day, snap.Session.Wave, snap.Session.Kills), int(x), int(y)+10)
	y += hudLine
	h.label(screen, fmt.Sprintf("Enemies %d  Buildings %d", snap.LiveEnemies, len(snap.Buildings)), int(x), int(y)+10)

	h.drawWeapon(screen, p)
	h.drawToast(screen)

	switch snap.Session.Phase {
	case component.Paused:
		h.overlay(screen, "PAUSED", "P to resume")
	case component.Over:
		h.overlay(screen, "GAME OVER", fmt.Sprintf("wave %d, %d kills. R to restart", snap.Session.Wave, snap.Session.Kills))
	}
}

func drawBar(screen *ebiten.Image, x, y float32, fraction float64, clr color.RGBA) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, render.DarkenColor(clr), false)
	vector.DrawFilledRect(screen, x, y, barWidth*float32(fraction), barHeight, clr, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 1, config.TextLightColor, false)
}

// drawWeapon — значок оружия в правом верхнем углу, серый сектор показывает перезарядку.
func (h *HUD) drawWeapon(screen *ebiten.Image, p *component.Player) {
	cx, cy := float32(config.ScreenWidth-30), float32(30)
	vector.DrawFilledCircle(screen, cx, cy, 18, config.OverlayColor, true)
	label := "SW"
	full := config.MeleeCooldown
	if p.Weapon == component.Ranged {
		label = "GN"
		full = config.RangedCooldown
	}
	if p.AttackCooldown > 0 {
		frac := float32(p.AttackCooldown) / float32(full)
		vector.DrawFilledRect(screen, cx-18, cy+18-36*frac, 36, 36*frac, config.CooldownColor, false)
	}
	h.centered(screen, label, int(cx), int(cy), config.TextLightColor)
}

func (h *HUD) drawToast(screen *ebiten.Image) {
	a := h.toast.Alpha()
	if a <= 0 {
		return
	}
	h.centered(screen, h.toast.Text, config.ScreenWidth/2, config.ScreenHeight/3,
		render.WithAlpha(config.TextLightColor, float64(a)))
}

func (h *HUD) overlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	h.centered(screen, title, config.ScreenWidth/2, config.ScreenHeight/2-10, config.TextLightColor)
	h.centered(screen, hint, config.ScreenWidth/2, config.ScreenHeight/2+14, config.TextLightColor)
}

func (h *HUD) label(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, h.fontFace, x, y, config.TextLightColor)
}

func (h *HUD) centered(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(h.fontFace, s)
	text.Draw(screen, s, h.fontFace, x-b.Dx()/2, y+b.Dy()/2, clr)
}
