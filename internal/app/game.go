// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/input"
	"go-mars-survival/internal/persistence"
	"go-mars-survival/internal/system"
	"go-mars-survival/internal/utils"
	"go-mars-survival/pkg/gridmap"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Options задают параметры новой партии.
type Options struct {
	Seed  int64               // 0 — сид от текущего времени
	Rules config.Rules        // пустые правила заменяются на FullRules
	Clock system.Clock        // nil — TickClock с шагом в один кадр
	Store persistence.Storage // nil — хранилище в памяти
}

// Game — одна игровая сессия: состояние, системы и их порядок вызова.
type Game struct {
	SessionID       uuid.UUID
	Rules           config.Rules
	ECS             *entity.ECS
	Rng             *utils.PRNGService
	Clock           system.Clock
	EventDispatcher *event.Dispatcher
	Store           persistence.Storage

	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EconomySystem    *system.EconomySystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem
}

// advancer — часы, которые идут только по кадрам симуляции.
type advancer interface {
	Advance()
}

// NewGame создаёт партию: генерирует карту и собирает системы.
func NewGame(opts Options) (*Game, error) {
	rules := opts.Rules
	if rules.Name == "" {
		rules = config.FullRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = system.NewTickClock(config.FrameDuration)
	}
	store := opts.Store
	if store == nil {
		store = persistence.NewMemoryStore()
	}

	g := &Game{
		Rules:           rules,
		Clock:           clock,
		Store:           store,
		EventDispatcher: event.NewDispatcher(),
	}
	if err := g.Restart(opts.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart отбрасывает всё состояние и начинает новую партию с новой картой.
func (g *Game) Restart(seed int64) error {
	rng := utils.NewPRNGService(seed)
	grid, err := gridmap.Generate(config.MapWidth, config.MapHeight, config.CellSize, rng)
	if err != nil {
		return fmt.Errorf("generate map: %w", err)
	}

	g.SessionID = uuid.New()
	g.Rng = rng
	g.ECS = entity.NewECS(grid)
	g.initSystems()
	g.MovementSystem.UpdateCamera()

	log.WithFields(log.Fields{
		"session": g.SessionID,
		"seed":    rng.Seed(),
		"rules":   g.Rules.Name,
	}).Info("session started")
	return nil
}

func (g *Game) initSystems() {
	now := g.Clock.Now()
	ecs := g.ECS
	d := g.EventDispatcher
	d.Reset()

	g.MovementSystem = system.NewMovementSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, d, g.ProjectileSystem, g.Rules)
	g.WaveSystem = system.NewWaveSystem(ecs, d, g.Rules, g.Rng, now)
	g.EconomySystem = system.NewEconomySystem(ecs, d, g.Rules, g.Rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.Rng, g.Rules.DropChance)
	g.StateSystem = system.NewStateSystem(ecs, d, now)

	d.Subscribe(g.PlayerSystem, event.EnemyKilled)
	d.Subscribe(&GameEventListener{game: g},
		event.ResourceGathered, event.BuildingPlaced, event.WeaponSwitched)
}

// Report — итоги действий, выполненных за кадр.
type Report struct {
	Processed bool
	Attacks   []system.AttackResult
	Gathers   []system.GatherResult
	Builds    []system.BuildResult
}

// Tick продвигает симуляцию на один кадр. Порядок шагов фиксирован:
// управление паузой, движение, камера, бой, спавн, пули, контактный урон,
// враги, уборка убитых, экономика, проверка конца игры.
// На паузе и после конца игры кадр не засчитывается.
func (g *Game) Tick(in input.Vector, actions []input.Action) Report {
	for _, a := range actions {
		if !a.IsControl() {
			continue
		}
		switch a {
		case input.TogglePause:
			g.StateSystem.TogglePause()
		case input.Pause:
			g.StateSystem.Pause()
		case input.Resume:
			g.StateSystem.Resume()
		}
	}

	var report Report
	if g.StateSystem.Current() != component.Running {
		return report
	}
	report.Processed = true
	now := g.Clock.Now()
	dir := component.Velocity{DX: in.X, DY: in.Y}

	if !in.IsZero() {
		g.MovementSystem.MovePlayer(dir)
		g.MovementSystem.UpdateCamera()
	}

	g.CombatSystem.UpdateTimers()
	for _, a := range actions {
		switch a {
		case input.Attack:
			report.Attacks = append(report.Attacks, g.CombatSystem.Attack(dir))
		case input.SwitchWeapon:
			g.CombatSystem.SwitchWeapon()
		}
	}

	g.WaveSystem.Update(now)
	g.ProjectileSystem.Update()

	g.CombatSystem.ApplyContactDamage()
	g.MovementSystem.UpdateEnemies()
	g.CombatSystem.RemoveDead()

	for _, a := range actions {
		x, y := g.EconomySystem.PlayerCell()
		switch a {
		case input.Gather:
			report.Gathers = append(report.Gathers, g.EconomySystem.Gather(x, y))
		case input.BuildMiner:
			report.Builds = append(report.Builds, g.EconomySystem.Build(x, y, gridmap.Miner))
		case input.BuildBase:
			report.Builds = append(report.Builds, g.EconomySystem.Build(x, y, gridmap.Base))
		}
	}
	g.EconomySystem.Passive()
	g.StateSystem.UpdateDay(now)

	g.StateSystem.CheckGameOver()

	g.ECS.GameState.Tick++
	if c, ok := g.Clock.(advancer); ok {
		c.Advance()
	}
	return report
}

// Save записывает текущую партию в хранилище.
func (g *Game) Save(ctx context.Context) error {
	state := g.ECS.GameState
	snap := &persistence.Snapshot{
		SessionID: g.SessionID.String(),
		SavedAt:   time.Now().UTC(),
		Player:    g.ECS.Player.Clone(),
		Grid:      g.ECS.Grid.Clone(),
		Wave:      state.Wave,
		Kills:     state.Kills,
		Day:       state.Day,
		Buildings: append([]component.Building(nil), g.ECS.Buildings...),
	}
	data, err := persistence.Encode(snap)
	if err != nil {
		return err
	}
	if err := g.Store.Put(ctx, config.SaveKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	log.WithFields(log.Fields{
		"session": g.SessionID,
		"wave":    state.Wave,
		"bytes":   len(data),
	}).Info("session saved")
	return nil
}

// Load восстанавливает партию из хранилища. Враги и пули при этом исчезают.
// Если сохранения нет, возвращает false без ошибки.
func (g *Game) Load(ctx context.Context) (bool, error) {
	data, err := g.Store.Get(ctx, config.SaveKey)
	if errors.Is(err, persistence.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	snap, err := persistence.Decode(data)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	ecs := g.ECS
	ecs.ClearEnemies()
	ecs.ClearProjectiles()
	ecs.Grid = snap.Grid
	player := snap.Player
	ecs.Player = &player
	ecs.Buildings = snap.Buildings
	ecs.HitEffects = nil
	ecs.Toast = component.Toast{}
	ecs.GameState.Wave = snap.Wave
	ecs.GameState.Kills = snap.Kills
	ecs.GameState.Day = snap.Day
	ecs.GameState.Phase = component.Running

	if id, err := uuid.Parse(snap.SessionID); err == nil {
		g.SessionID = id
	}
	now := g.Clock.Now()
	g.WaveSystem.Reset(now)
	g.StateSystem.ResetDay(now)
	g.MovementSystem.UpdateCamera()

	log.WithFields(log.Fields{
		"session": g.SessionID,
		"wave":    snap.Wave,
		"savedAt": snap.SavedAt,
	}).Info("session loaded")
	return true, nil
}

// Close освобождает хранилище.
func (g *Game) Close() error {
	return g.Store.Close()
}

// GameEventListener пишет в журнал события экономики и боя.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	entry := log.WithField("session", l.game.SessionID)
	switch data := e.Data.(type) {
	case event.CellData:
		entry.WithFields(log.Fields{
			"x":        data.X,
			"y":        data.Y,
			"resource": data.Resource,
			"building": data.Building,
		}).Debug(string(e.Type))
	case component.Weapon:
		entry.WithField("weapon", data).Debug(string(e.Type))
	}
}
