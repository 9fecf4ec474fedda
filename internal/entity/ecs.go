// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/types"
	"go-mars-survival/pkg/gridmap"
)

// ECS хранит все сущности сессии. Владелец — ровно одна игровая сессия.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile

	Grid       *gridmap.Grid
	Player     *component.Player
	Buildings  []component.Building
	HitEffects []component.HitEffect
	Toast      component.Toast
	Camera     component.Position
	GameState  *component.Session
}

func NewECS(grid *gridmap.Grid) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Grid:        grid,
		Player:      NewPlayer(),
		GameState: &component.Session{
			Phase: component.Running,
			Wave:  1,
			Day:   1,
		},
	}
}

// NewPlayer создаёт игрока в центре стартовой клетки со стартовым снаряжением.
func NewPlayer() *component.Player {
	return &component.Player{
		Position: component.Position{
			X: config.PlayerStartCellX * config.CellSize,
			Y: config.PlayerStartCellY * config.CellSize,
		},
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
		Energy:    config.PlayerStartEnergy,
		MaxEnergy: config.PlayerMaxEnergy,
		Inventory: component.Inventory{
			gridmap.Iron:      config.PlayerStartIron,
			gridmap.Silicon:   config.PlayerStartSilicon,
			gridmap.RareMetal: 0,
		},
		Weapon: component.Melee,
		Facing: component.Velocity{DX: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
}

// ClearEnemies удаляет всех врагов.
func (ecs *ECS) ClearEnemies() {
	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles удаляет все пули.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}

// SortedIDs возвращает ключи карты компонентов по возрастанию.
// Обход карт в Go случаен, а симуляция должна быть детерминированной.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
