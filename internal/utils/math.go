// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора ok == false.
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}
