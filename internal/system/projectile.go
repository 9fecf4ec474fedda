// internal/system/projectile.go
package system

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/types"
)

// ProjectileSystem управляет движением пуль и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Fire создаёт пулю в точке from.
func (s *ProjectileSystem) Fire(from component.Position, vel component.Velocity, damage float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Velocities[id] = &component.Velocity{DX: vel.DX, DY: vel.DY}
	s.ecs.Projectiles[id] = &component.Projectile{Damage: damage}
	return id
}

// Update сдвигает каждую пулю на её скорость. Пуля поражает первого живого врага
// (по возрастанию ID) в радиусе попадания и исчезает; пули далеко за полем удаляются.
func (s *ProjectileSystem) Update() {
	enemies := liveEnemyIDs(s.ecs)
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		pos.X += vel.DX
		pos.Y += vel.DY

		if s.hitFirst(id, pos, enemies) {
			continue
		}
		if s.outOfBounds(pos) {
			s.ecs.RemoveEntity(id)
		}
	}
}

func (s *ProjectileSystem) hitFirst(id types.EntityID, pos *component.Position, enemies []types.EntityID) bool {
	proj := s.ecs.Projectiles[id]
	for _, enemyID := range enemies {
		health := s.ecs.Healths[enemyID]
		if !health.Alive() {
			continue // добит другой пулей в этом же кадре
		}
		if pos.DistanceTo(*s.ecs.Positions[enemyID]) < config.ProjectileHitR {
			ApplyDamage(s.ecs, enemyID, proj.Damage)
			s.ecs.RemoveEntity(id)
			return true
		}
	}
	return false
}

func (s *ProjectileSystem) outOfBounds(pos *component.Position) bool {
	w, h := s.ecs.Grid.Bounds()
	m := config.ProjectileMargin
	return pos.X < -m || pos.X > w+m || pos.Y < -m || pos.Y > h+m
}
