package system

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/utils"
	"go-mars-survival/pkg/gridmap"
)

// GatherResult — итог сбора ресурса.
type GatherResult int

const (
	GatherOK GatherResult = iota
	GatherOutOfBounds
	GatherNoEnergy
	GatherNoResource
)

func (r GatherResult) String() string {
	return [...]string{"ok", "out of bounds", "no energy", "no resource"}[r]
}

// BuildResult — итог попытки постройки.
type BuildResult int

const (
	BuildOK BuildResult = iota
	BuildOutOfBounds
	BuildUnknownKind
	BuildOccupied
	BuildInsufficient
)

func (r BuildResult) String() string {
	return [...]string{"ok", "out of bounds", "unknown kind", "occupied", "insufficient resources"}[r]
}

// EconomySystem — сбор ресурсов, строительство и пассивный доход.
// Все проверки выполняются до изменения состояния, поэтому запасы не уходят в минус.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rules           config.Rules
	rng             *utils.PRNGService
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rules config.Rules, rng *utils.PRNGService) *EconomySystem {
	return &EconomySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rules:           rules,
		rng:             rng,
	}
}

// PlayerCell — координаты клетки под игроком.
func (s *EconomySystem) PlayerCell() (int, int) {
	p := s.ecs.Player.Position
	return s.ecs.Grid.CellAt(p.X, p.Y)
}

// Gather забирает ресурс с клетки.
func (s *EconomySystem) Gather(x, y int) GatherResult {
	cell := s.ecs.Grid.At(x, y)
	if cell == nil {
		return GatherOutOfBounds
	}
	player := s.ecs.Player
	if player.Energy < config.GatherEnergyNeeded {
		return GatherNoEnergy
	}
	if cell.Resource == gridmap.None {
		return GatherNoResource
	}

	res := cell.Resource
	player.Inventory.Add(res, s.rules.GatherYield)
	cell.Resource = gridmap.None
	player.Energy = max(player.Energy-s.rules.GatherEnergyCost, 0)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ResourceGathered,
		Data: event.CellData{X: x, Y: y, Resource: res, Amount: s.rules.GatherYield},
	})
	return GatherOK
}

// Build возводит постройку на свободной клетке, если хватает ресурсов.
func (s *EconomySystem) Build(x, y int, kind gridmap.BuildingKind) BuildResult {
	cell := s.ecs.Grid.At(x, y)
	if cell == nil {
		return BuildOutOfBounds
	}
	cost, ok := s.rules.CostOf(kind)
	if !ok {
		return BuildUnknownKind
	}
	if cell.Building != gridmap.NoBuilding {
		return BuildOccupied
	}
	if !s.ecs.Player.Inventory.CanAfford(cost) {
		return BuildInsufficient
	}

	s.ecs.Player.Inventory.Spend(cost)
	cell.Building = kind
	s.ecs.Buildings = append(s.ecs.Buildings, component.Building{X: x, Y: y, Kind: kind})

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BuildingPlaced,
		Data: event.CellData{X: x, Y: y, Building: kind},
	})
	return BuildOK
}

// Passive — пассивный доход за кадр: восстановление энергии и добыча шахт.
func (s *EconomySystem) Passive() {
	player := s.ecs.Player
	if s.rules.EnergyRegenPerTick > 0 {
		player.Energy = min(player.Energy+s.rules.EnergyRegenPerTick, player.MaxEnergy)
	}
	if s.rules.MinerYieldChance <= 0 {
		return
	}
	for _, b := range s.ecs.Buildings {
		if b.Kind == gridmap.Miner && s.rng.Chance(s.rules.MinerYieldChance) {
			player.Inventory.Add(gridmap.Iron, 1)
		}
	}
}
