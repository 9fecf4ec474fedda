// internal/config/rules.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go-mars-survival/internal/defs"
	"go-mars-survival/pkg/gridmap"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRules возвращается, если набор правил не прошёл проверку.
var ErrInvalidRules = errors.New("invalid rules")

// Rules — параметры варианта игры: темп спавна, экономика, урон.
// Всё, что отличается между вариантами, живёт здесь, а не в константах.
type Rules struct {
	Name string `yaml:"name"`

	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnChance   float64       `yaml:"spawn_chance"`  // вероятность спавна при срабатывании таймера
	WaveFactor    int           `yaml:"wave_factor"`   // волна растёт, когда живых врагов > волна × фактор
	IntervalStep  time.Duration `yaml:"interval_step"` // на сколько сокращать интервал при новой волне
	MinInterval   time.Duration `yaml:"min_interval"`
	MixedEnemies  bool          `yaml:"mixed_enemies"` // false — только разведчики
	HealthPerWave float64       `yaml:"health_per_wave"`
	SpeedPerWave  float64       `yaml:"speed_per_wave"`
	ScoutHealth   float64       `yaml:"scout_health"` // базовое здоровье разведчика, 0 — из defs

	ContactDamage float64 `yaml:"contact_damage"`
	DropChance    float64 `yaml:"drop_chance"`

	GatherYield        int     `yaml:"gather_yield"`
	GatherEnergyCost   float64 `yaml:"gather_energy_cost"`
	EnergyRegenPerTick float64 `yaml:"energy_regen_per_tick"`
	MinerYieldChance   float64 `yaml:"miner_yield_chance"`

	MinerCost defs.Cost `yaml:"miner_cost"`
	BaseCost  defs.Cost `yaml:"base_cost"`
}

// FullRules — основной вариант.
func FullRules() Rules {
	return Rules{
		Name:               "full",
		SpawnInterval:      2000 * time.Millisecond,
		SpawnChance:        1.0,
		WaveFactor:         3,
		IntervalStep:       100 * time.Millisecond,
		MinInterval:        MinSpawnInterval,
		MixedEnemies:       true,
		ContactDamage:      0.5,
		DropChance:         0.3,
		GatherYield:        1,
		GatherEnergyCost:   10,
		EnergyRegenPerTick: 0.05,
		MinerYieldChance:   0.002,
		MinerCost:          defs.Cost{Iron: 3},
		BaseCost:           defs.Cost{Iron: 5, Silicon: 2},
	}
}

// RelaxedRules — облегчённый вариант: враги реже, слабее и только разведчики,
// зато растут с каждой волной.
func RelaxedRules() Rules {
	return Rules{
		Name:             "relaxed",
		SpawnInterval:    6000 * time.Millisecond,
		SpawnChance:      0.3,
		WaveFactor:       2,
		MinInterval:      MinSpawnInterval,
		MixedEnemies:     false,
		HealthPerWave:    2,
		ScoutHealth:      10,
		SpeedPerWave:     0.1,
		ContactDamage:    0.3,
		DropChance:       0.3,
		GatherYield:      2,
		GatherEnergyCost: 5,
		MinerCost:        defs.Cost{Iron: 2},
		BaseCost:         defs.Cost{Iron: 3, Silicon: 1},
	}
}

// Preset возвращает встроенный набор правил по имени.
func Preset(name string) (Rules, error) {
	switch name {
	case "", "full":
		return FullRules(), nil
	case "relaxed":
		return RelaxedRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidRules, name)
	}
}

// CostOf возвращает стоимость постройки.
func (r Rules) CostOf(kind gridmap.BuildingKind) (defs.Cost, bool) {
	switch kind {
	case gridmap.Miner:
		return r.MinerCost, true
	case gridmap.Base:
		return r.BaseCost, true
	default:
		return defs.Cost{}, false
	}
}

// Validate проверяет согласованность правил.
func (r Rules) Validate() error {
	switch {
	case r.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidRules)
	case r.SpawnChance < 0 || r.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance must be within [0,1]", ErrInvalidRules)
	case r.DropChance < 0 || r.DropChance > 1:
		return fmt.Errorf("%w: drop_chance must be within [0,1]", ErrInvalidRules)
	case r.MinerYieldChance < 0 || r.MinerYieldChance > 1:
		return fmt.Errorf("%w: miner_yield_chance must be within [0,1]", ErrInvalidRules)
	case r.WaveFactor < 1:
		return fmt.Errorf("%w: wave_factor must be at least 1", ErrInvalidRules)
	case r.MinInterval < MinSpawnInterval:
		return fmt.Errorf("%w: min_interval below %v", ErrInvalidRules, MinSpawnInterval)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: interval_step must not be negative", ErrInvalidRules)
	case r.GatherYield < 0 || r.GatherEnergyCost < 0:
		return fmt.Errorf("%w: gather yield and cost must not be negative", ErrInvalidRules)
	case r.ScoutHealth < 0 || r.HealthPerWave < 0:
		return fmt.Errorf("%w: enemy health settings must not be negative", ErrInvalidRules)
	case r.ContactDamage < 0 || r.EnergyRegenPerTick < 0:
		return fmt.Errorf("%w: damage and regen must not be negative", ErrInvalidRules)
	case !r.MinerCost.Valid() || !r.BaseCost.Valid():
		return fmt.Errorf("%w: building costs must not be negative", ErrInvalidRules)
	}
	return nil
}

// ParseRules разбирает YAML. Поле preset выбирает основу, остальные поля её переопределяют.
func ParseRules(data []byte) (Rules, error) {
	var header struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	rules, err := Preset(header.Preset)
	if err != nil {
		return Rules{}, err
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRules читает файл правил.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return Rules{}, err
	}
	log.WithFields(log.Fields{
		"path":     path,
		"rules":    rules.Name,
		"interval": rules.SpawnInterval,
	}).Info("rules loaded")
	return rules, nil
}
