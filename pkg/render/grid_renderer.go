package render

import (
	"go-mars-survival/internal/app"
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует карту и сущности из снимка партии.
type GridRenderer struct {
	colors       *MapColors
	screenWidth  int
	screenHeight int
	mapImage     *ebiten.Image // предрендеренная поверхность карты
}

func NewGridRenderer(colors *MapColors, screenWidth, screenHeight int) *GridRenderer {
	return &GridRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// RenderMapImage заново рисует поверхность. Поверхность не меняется за партию,
// поэтому вызывается только при старте, перезапуске и загрузке.
func (r *GridRenderer) RenderMapImage(grid *gridmap.Grid) {
	w, h := grid.Bounds()
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(int(w), int(h))
	cs := float32(grid.CellSize)

	for _, c := range grid.Cells {
		x, y := float32(c.X)*cs, float32(c.Y)*cs
		vector.DrawFilledRect(r.mapImage, x, y, cs, cs, pick(r.colors.TerrainColors, int(c.Terrain)), false)
		vector.StrokeRect(r.mapImage, x, y, cs, cs, 1, r.colors.GridLineColor, false)
	}
}

// Draw рисует кадр: карта, ресурсы, постройки, пули, враги, вспышки, игрок.
func (r *GridRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)
	if r.mapImage == nil {
		r.RenderMapImage(snap.Grid)
	}

	cam := snap.Camera
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(r.mapImage, op)

	r.drawCells(screen, snap)
	for _, p := range snap.Projectiles {
		x, y := r.toScreen(cam, p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, r.colors.ProjectileColor, true)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, cam, e)
	}
	for _, fx := range snap.HitEffects {
		x, y := r.toScreen(cam, fx.X, fx.Y)
		a := float64(fx.Timer) / config.HitEffectTicks
		radius := float32(20 + (1-a)*15)
		vector.StrokeCircle(screen, x, y, radius, 3, WithAlpha(r.colors.HitEffectColor, a), true)
	}
	r.drawPlayer(screen, cam, &snap.Player)
}

func (r *GridRenderer) toScreen(cam component.Position, x, y float64) (float32, float32) {
	return float32(x - cam.X), float32(y - cam.Y)
}

func (r *GridRenderer) visible(x, y, margin float32) bool {
	return x > -margin && y > -margin &&
		x < float32(r.screenWidth)+margin && y < float32(r.screenHeight)+margin
}

func (r *GridRenderer) drawCells(screen *ebiten.Image, snap *app.Snapshot) {
	grid := snap.Grid
	cs := float32(grid.CellSize)
	for _, c := range grid.Cells {
		if c.Resource == gridmap.None && c.Building == gridmap.NoBuilding {
			continue
		}
		x, y := r.toScreen(snap.Camera, float64(c.X)*grid.CellSize, float64(c.Y)*grid.CellSize)
		if !r.visible(x, y, cs) {
			continue
		}
		if c.Resource != gridmap.None {
			vector.DrawFilledCircle(screen, x+cs/2, y+cs/2, cs/5, pick(r.colors.ResourceColors, int(c.Resource)), true)
		}
		switch c.Building {
		case gridmap.Miner:
			vector.DrawFilledRect(screen, x+4, y+8, cs-8, cs-12, r.colors.MinerColor, false)
			vector.DrawFilledRect(screen, x+cs-12, y+2, 5, 8, r.colors.ChimneyColor, false)
		case gridmap.Base:
			vector.DrawFilledRect(screen, x+2, y+cs/2, cs-4, cs/2-2, r.colors.BaseColor, false)
			vector.DrawFilledCircle(screen, x+cs/2, y+cs/2, cs/2-4, r.colors.DomeColor, true)
		}
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, cam component.Position, e app.EnemyView) {
	x, y := r.toScreen(cam, e.X, e.Y)
	radius := float32(e.Radius)
	if !r.visible(x, y, radius+4) {
		return
	}
	vector.DrawFilledCircle(screen, x, y, radius, r.colors.EnemyColor, true)
	vector.StrokeCircle(screen, x, y, radius, 1, DarkenColor(r.colors.EnemyColor), true)

	barW := radius * 2
	vector.DrawFilledRect(screen, x-radius, y-radius-6, barW, 3, DarkenColor(r.colors.EnemyHealthBar), false)
	vector.DrawFilledRect(screen, x-radius, y-radius-6, barW*float32(e.Health.Fraction()), 3, r.colors.EnemyHealthBar, false)
}

func (r *GridRenderer) drawPlayer(screen *ebiten.Image, cam component.Position, p *component.Player) {
	x, y := r.toScreen(cam, p.Position.X, p.Position.Y)
	vector.DrawFilledCircle(screen, x, y, 12, r.colors.PlayerColor, true)
	vector.DrawFilledCircle(screen, x, y-4, 6, r.colors.HelmetColor, true)

	// Оружие смотрит туда же, куда игрок шёл последним.
	fx, fy := float32(p.Facing.DX), float32(p.Facing.DY)
	if p.Weapon == component.Melee {
		vector.StrokeLine(screen, x+fx*10, y+fy*10, x+fx*24, y+fy*24, 3, r.colors.SwordColor, true)
	} else {
		vector.StrokeLine(screen, x+fx*10, y+fy*10, x+fx*18, y+fy*18, 5, r.colors.GunColor, true)
	}
}
