// pkg/render/color.go
package render

import "image/color"

// MapColors — цвета карты и сущностей для GridRenderer.
type MapColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	TerrainColors   []color.RGBA // по gridmap.Terrain
	ResourceColors  []color.RGBA // по gridmap.Resource
	MinerColor      color.RGBA
	BaseColor       color.RGBA
	ChimneyColor    color.RGBA
	DomeColor       color.RGBA
	PlayerColor     color.RGBA
	HelmetColor     color.RGBA
	EnemyColor      color.RGBA
	EnemyHealthBar  color.RGBA
	ProjectileColor color.RGBA
	HitEffectColor  color.RGBA
	SwordColor      color.RGBA
	GunColor        color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с прозрачностью a ∈ [0,1], умноженной на исходную.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// RGBA в image/color хранится с предумноженной альфой.
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// pick безопасно берёт цвет по индексу перечисления.
func pick(colors []color.RGBA, i int) color.RGBA {
	if i < 0 || i >= len(colors) {
		return color.RGBA{}
	}
	return colors[i]
}
