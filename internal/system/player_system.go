// internal/system/player_system.go
package system

import (
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/utils"
	"go-mars-survival/pkg/gridmap"
)

// PlayerSystem отвечает за награды игрока: счёт убийств и выпадение железа.
type PlayerSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	dropChance float64
}

func NewPlayerSystem(ecs *entity.ECS, rng *utils.PRNGService, dropChance float64) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, rng: rng, dropChance: dropChance}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}

	s.ecs.GameState.Kills++
	if s.rng.Chance(s.dropChance) {
		s.ecs.Player.Inventory.Add(gridmap.Iron, 1)
	}
}
