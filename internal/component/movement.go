// component/movement.go
package component

import "math"

// Position — компонент позиции в мировых единицах
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой позиции.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Velocity — смещение за один кадр
type Velocity struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}
