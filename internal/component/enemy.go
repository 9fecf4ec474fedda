package component

import "go-mars-survival/internal/defs"

// Enemy представляет вражескую сущность. Позиция и здоровье хранятся в общих компонентах.
type Enemy struct {
	Type  defs.EnemyType
	Speed float64 // мировых единиц за кадр
}
