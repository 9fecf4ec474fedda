package system

import (
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/types"
)

// ApplyDamage наносит урон сущности со здоровьем. Здоровье не опускается ниже нуля.
// Возвращает true, если урон был применён.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) bool {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return false
	}

	health.Value -= damage
	if health.Value <= 0 {
		health.Value = 0
	}
	return true
}

// liveEnemyIDs возвращает живых врагов в порядке возрастания ID.
func liveEnemyIDs(ecs *entity.ECS) []types.EntityID {
	ids := entity.SortedIDs(ecs.Enemies)
	live := ids[:0]
	for _, id := range ids {
		if h, ok := ecs.Healths[id]; ok && h.Alive() {
			live = append(live, id)
		}
	}
	return live
}
