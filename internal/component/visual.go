// internal/component/visual.go
package component

// HitEffect — вспышка в точке удара ближнего боя.
type HitEffect struct {
	X, Y  float64
	Timer int // сколько кадров осталось
}

// Toast — временное сообщение поверх экрана (смена оружия).
type Toast struct {
	Text  string
	Timer int
}

// Active сообщает, что сообщение ещё должно показываться.
func (t Toast) Active() bool {
	return t.Timer > 0 && t.Text != ""
}
