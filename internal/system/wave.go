// internal/system/wave.go
package system

import (
	"time"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/defs"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/types"
	"go-mars-survival/internal/utils"

	log "github.com/sirupsen/logrus"
)

// Стороны поля, с которых появляются враги.
const (
	sideTop = iota
	sideRight
	sideBottom
	sideLeft
)

// WaveSystem управляет темпом спавна врагов и ростом сложности.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rules           config.Rules
	rng             *utils.PRNGService

	LastSpawn     time.Time
	SpawnInterval time.Duration
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rules config.Rules, rng *utils.PRNGService, now time.Time) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rules:           rules,
		rng:             rng,
		LastSpawn:       now,
		SpawnInterval:   rules.SpawnInterval,
	}
}

// Update проверяет таймер спавна. Когда интервал истёк, враг появляется
// (с вероятностью SpawnChance), таймер сбрасывается и пересчитывается волна.
func (s *WaveSystem) Update(now time.Time) {
	if now.Sub(s.LastSpawn) <= s.SpawnInterval {
		return
	}
	if s.rng.Chance(s.rules.SpawnChance) {
		s.SpawnEnemy()
	}
	s.LastSpawn = now
	s.checkWave()
}

// Reset перезапускает таймер после загрузки сохранения. Интервал
// пересчитывается так, будто волны до текущей прошли по порядку.
func (s *WaveSystem) Reset(now time.Time) {
	s.LastSpawn = now
	s.SpawnInterval = s.rules.SpawnInterval
	if s.rules.IntervalStep <= 0 {
		return
	}
	floor := max(s.rules.MinInterval, config.MinSpawnInterval)
	for w := 1; w < s.ecs.GameState.Wave && s.SpawnInterval > floor; w++ {
		s.SpawnInterval = max(s.SpawnInterval-s.rules.IntervalStep, floor)
	}
}

// SpawnEnemy создаёт врага на случайном краю поля.
func (s *WaveSystem) SpawnEnemy() types.EntityID {
	wave := s.ecs.GameState.Wave
	enemyType := s.pickType(wave)
	def, _ := defs.Enemy(enemyType)

	base := def.Health
	if enemyType == defs.EnemyScout && s.rules.ScoutHealth > 0 {
		base = s.rules.ScoutHealth
	}
	health := base + float64(wave)*s.rules.HealthPerWave
	speed := def.Speed + float64(wave)*s.rules.SpeedPerWave
	x, y := s.spawnPosition()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{Type: enemyType, Speed: speed}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: id, Type: enemyType, X: x, Y: y},
	})
	return id
}

// pickType выбирает тип врага по шаблону волны. Если выбор однозначен,
// бросок не делается.
func (s *WaveSystem) pickType(wave int) defs.EnemyType {
	if !s.rules.MixedEnemies {
		return defs.EnemyScout
	}
	pattern := defs.PatternForWave(wave)
	if len(pattern.Weights) == 1 {
		return pattern.Weights[0].Type
	}
	return pattern.Pick(s.rng.Float64())
}

// spawnPosition выбирает сторону поля равновероятно и точку вдоль неё,
// на одну клетку за границей.
func (s *WaveSystem) spawnPosition() (float64, float64) {
	grid := s.ecs.Grid
	w, h := grid.Bounds()
	offset := grid.CellSize

	switch s.rng.Intn(4) {
	case sideTop:
		return s.rng.Float64() * w, -offset
	case sideRight:
		return w + offset, s.rng.Float64() * h
	case sideBottom:
		return s.rng.Float64() * w, h + offset
	default:
		return -offset, s.rng.Float64() * h
	}
}

// checkWave повышает волну, когда живых врагов больше, чем волна × фактор.
func (s *WaveSystem) checkWave() {
	state := s.ecs.GameState
	live := len(liveEnemyIDs(s.ecs))
	if live <= state.Wave*s.rules.WaveFactor {
		return
	}

	state.Wave++
	if s.rules.IntervalStep > 0 {
		floor := max(s.rules.MinInterval, config.MinSpawnInterval)
		s.SpawnInterval = max(s.SpawnInterval-s.rules.IntervalStep, floor)
	}

	log.WithFields(log.Fields{
		"wave":     state.Wave,
		"enemies":  live,
		"interval": s.SpawnInterval,
	}).Info("wave advanced")

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveAdvanced,
		Data: event.WaveData{
			Wave:          state.Wave,
			LiveEnemies:   live,
			SpawnInterval: s.SpawnInterval.Milliseconds(),
		},
	})
}
