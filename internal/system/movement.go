// internal/system/movement.go
package system

import (
	"math"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/utils"
)

// MovementSystem двигает игрока по вектору ввода и врагов — к игроку по прямой.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// MovePlayer сдвигает игрока на dir × скорость и не даёт выйти за поле.
// Компоненты dir ограничиваются отрезком [-1, 1].
func (s *MovementSystem) MovePlayer(dir component.Velocity) {
	dx := utils.Clamp(dir.DX, -1, 1)
	dy := utils.Clamp(dir.DY, -1, 1)
	if math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}

	player := s.ecs.Player
	grid := s.ecs.Grid
	maxX := float64(grid.Width-1) * grid.CellSize
	maxY := float64(grid.Height-1) * grid.CellSize

	player.Position.X = utils.Clamp(player.Position.X+dx*config.PlayerSpeed, 0, maxX)
	player.Position.Y = utils.Clamp(player.Position.Y+dy*config.PlayerSpeed, 0, maxY)

	if nx, ny, ok := utils.Normalize(dx, dy); ok {
		player.Facing = component.Velocity{DX: nx, DY: ny}
	}
}

// UpdateCamera центрирует камеру на игроке.
func (s *MovementSystem) UpdateCamera() {
	s.ecs.Camera = CameraFor(s.ecs.Player.Position)
}

// CameraFor — смещение вида для позиции игрока.
func CameraFor(p component.Position) component.Position {
	return component.Position{
		X: p.X - config.ScreenWidth/2,
		Y: p.Y - config.ScreenHeight/2,
	}
}

// UpdateEnemies двигает живых врагов к игроку с их собственной скоростью.
func (s *MovementSystem) UpdateEnemies() {
	target := s.ecs.Player.Position
	for _, id := range liveEnemyIDs(s.ecs) {
		pos := s.ecs.Positions[id]
		enemy := s.ecs.Enemies[id]

		dx := target.X - pos.X
		dy := target.Y - pos.Y
		nx, ny, ok := utils.Normalize(dx, dy)
		if !ok {
			continue
		}
		pos.X += nx * enemy.Speed
		pos.Y += ny * enemy.Speed
	}
}
