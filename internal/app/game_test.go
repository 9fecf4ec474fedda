package app

import (
	"context"
	"testing"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/defs"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/input"
	"go-mars-survival/internal/persistence"
	"go-mars-survival/internal/system"
	"go-mars-survival/internal/types"
	"go-mars-survival/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, rules config.Rules) *Game {
	t.Helper()
	g, err := NewGame(Options{Seed: 42, Rules: rules})
	require.NoError(t, err)
	return g
}

// spawnEnemyAt ставит неподвижного врага в точку.
func spawnEnemyAt(g *Game, x, y, hp float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Healths[id] = &component.Health{Value: hp, Max: hp}
	g.ECS.Enemies[id] = &component.Enemy{Type: defs.EnemyScout}
	return id
}

func playerCell(g *Game) *gridmap.Cell {
	x, y := g.EconomySystem.PlayerCell()
	return g.ECS.Grid.At(x, y)
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, config.Rules{})
	assert.Equal(t, "full", g.Rules.Name)

	snap := g.Snapshot()
	assert.Equal(t, component.Position{X: 320, Y: 480}, snap.Player.Position)
	assert.Equal(t, 100.0, snap.Player.Health)
	assert.Equal(t, 50.0, snap.Player.Energy)
	assert.Equal(t, 5, snap.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, 2, snap.Player.Inventory.Count(gridmap.Silicon))
	assert.Equal(t, component.Position{X: 120, Y: 130}, snap.Camera)
	assert.Equal(t, 1, snap.Session.Wave)
	assert.Equal(t, 1, snap.Session.Day)
	assert.Equal(t, component.Running, snap.Session.Phase)
	assert.Equal(t, config.MapWidth, snap.Grid.Width)
	assert.NotEmpty(t, snap.SessionID)
}

func TestNewGameRejectsInvalidRules(t *testing.T) {
	rules := config.FullRules()
	rules.SpawnChance = 2
	_, err := NewGame(Options{Rules: rules})
	assert.ErrorIs(t, err, config.ErrInvalidRules)
}

func TestGeneratedResourcesFollowTerrain(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	for _, c := range g.ECS.Grid.Cells {
		if c.Resource != gridmap.None {
			assert.Equal(t, gridmap.ResourceFor(c.Terrain), c.Resource, "cell (%d,%d)", c.X, c.Y)
		}
	}
}

func TestDoubleGatherYieldsOnce(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	cell := playerCell(g)
	cell.Resource = gridmap.Iron

	r := g.Tick(input.Vector{}, []input.Action{input.Gather})
	require.Equal(t, []system.GatherResult{system.GatherOK}, r.Gathers)
	assert.Equal(t, 6, g.ECS.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, gridmap.None, cell.Resource)
	assert.InDelta(t, 40.05, g.ECS.Player.Energy, 1e-9)

	r = g.Tick(input.Vector{}, []input.Action{input.Gather})
	assert.Equal(t, []system.GatherResult{system.GatherNoResource}, r.Gathers)
	assert.Equal(t, 6, g.ECS.Player.Inventory.Count(gridmap.Iron))
}

func TestInventoryNeverNegative(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.ECS.Player.Energy = 5

	actions := []input.Action{input.Gather, input.BuildMiner, input.BuildBase, input.Attack, input.SwitchWeapon}
	moves := []input.Vector{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}, {X: 0.5, Y: 0.5}}
	for i := 0; i < 600; i++ {
		if i%7 == 0 {
			playerCell(g).Resource = gridmap.Iron
		}
		g.Tick(moves[i%len(moves)], []input.Action{actions[i%len(actions)]})
		for _, r := range gridmap.Resources {
			require.GreaterOrEqual(t, g.ECS.Player.Inventory.Count(r), 0, "tick %d %s", i, r)
		}
		require.GreaterOrEqual(t, g.ECS.Player.Energy, 0.0)
	}
}

func TestMeleeHitsEveryEnemyInRadius(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	near := []types.EntityID{
		spawnEnemyAt(g, p.X+10, p.Y, 100),
		spawnEnemyAt(g, p.X, p.Y-20, 100),
		spawnEnemyAt(g, p.X-40, p.Y, 100),
	}
	far := spawnEnemyAt(g, p.X+60, p.Y, 100)

	r := g.Tick(input.Vector{}, []input.Action{input.Attack})
	require.Equal(t, []system.AttackResult{system.AttackHit}, r.Attacks)
	for _, id := range near {
		assert.Equal(t, 75.0, g.ECS.Healths[id].Value)
	}
	assert.Equal(t, 100.0, g.ECS.Healths[far].Value)
	assert.Equal(t, config.MeleeCooldown, g.ECS.Player.AttackCooldown)
	assert.Len(t, g.ECS.HitEffects, 3)

	r = g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.Equal(t, []system.AttackResult{system.AttackOnCooldown}, r.Attacks)
	for _, id := range near {
		assert.Equal(t, 75.0, g.ECS.Healths[id].Value)
	}
	assert.Equal(t, config.MeleeCooldown-1, g.ECS.Player.AttackCooldown)
}

func TestMeleeKillIsTallied(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	id := spawnEnemyAt(g, p.X+60, p.Y, 20)
	g.ECS.Positions[id].X = p.X + 45

	var killed []event.EnemyData
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		killed = append(killed, e.Data.(event.EnemyData))
	}), event.EnemyKilled)

	g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.NotContains(t, g.ECS.Enemies, id)
	assert.Equal(t, 1, g.ECS.GameState.Kills)
	require.Len(t, killed, 1)
	assert.Equal(t, id, killed[0].ID)
	iron := g.ECS.Player.Inventory.Count(gridmap.Iron)
	assert.True(t, iron == 5 || iron == 6, "drop adds at most one iron, got %d", iron)
}

func TestMeleeMissKeepsWeaponReady(t *testing.T) {
	g := newTestGame(t, config.FullRules())

	r := g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.Equal(t, []system.AttackResult{system.AttackMissed}, r.Attacks)
	assert.Equal(t, 0, g.ECS.Player.AttackCooldown)

	p := g.ECS.Player.Position
	id := spawnEnemyAt(g, p.X+40, p.Y, 100)
	r = g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.Equal(t, []system.AttackResult{system.AttackHit}, r.Attacks)
	assert.Equal(t, 75.0, g.ECS.Healths[id].Value)
}

func TestMeleeKillOnSpawnTickDoesNotAdvanceWave(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	spawnEnemyAt(g, p.X+200, p.Y, 100)
	spawnEnemyAt(g, p.X-200, p.Y, 100)

	// первый спавн приходится на 122-й кадр
	for i := 0; i < 121; i++ {
		g.Tick(input.Vector{}, nil)
	}
	require.Len(t, g.ECS.Enemies, 2)

	victim := spawnEnemyAt(g, p.X+40, p.Y, 20)
	g.Tick(input.Vector{}, []input.Action{input.Attack})

	assert.NotContains(t, g.ECS.Enemies, victim)
	assert.Len(t, g.ECS.Enemies, 3, "two old enemies and the fresh spawn")
	assert.Equal(t, 1, g.ECS.GameState.Wave)
}

func TestContactMeasuredBeforeEnemyMoves(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	id := spawnEnemyAt(g, p.X+31, p.Y, 100)
	g.ECS.Enemies[id].Speed = 2

	g.Tick(input.Vector{}, nil)
	assert.Equal(t, 100.0, g.ECS.Player.Health)
	assert.InDelta(t, p.X+29, g.ECS.Positions[id].X, 1e-9)

	g.Tick(input.Vector{}, nil)
	assert.InDelta(t, 99.5, g.ECS.Player.Health, 1e-9)
}

func TestDyingEnemyStillTouches(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	id := spawnEnemyAt(g, p.X+10, p.Y, 20)

	g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.NotContains(t, g.ECS.Enemies, id)
	assert.Equal(t, 1, g.ECS.GameState.Kills)
	assert.InDelta(t, 99.5, g.ECS.Player.Health, 1e-9)

	g.Tick(input.Vector{}, nil)
	assert.InDelta(t, 99.5, g.ECS.Player.Health, 1e-9)
}

func TestRangedWithoutIron(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.ECS.Player.Weapon = component.Ranged
	g.ECS.Player.Inventory[gridmap.Iron] = 0

	r := g.Tick(input.Vector{}, []input.Action{input.Attack})
	assert.Equal(t, []system.AttackResult{system.AttackNoAmmo}, r.Attacks)
	assert.Empty(t, g.ECS.Projectiles)
	assert.Equal(t, 0, g.ECS.Player.AttackCooldown)
}

func TestRangedUsesFacingWhenIdle(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.ECS.Player.Weapon = component.Ranged

	r := g.Tick(input.Vector{}, []input.Action{input.Attack})
	require.Equal(t, []system.AttackResult{system.AttackFired}, r.Attacks)
	assert.Equal(t, 4, g.ECS.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, config.RangedCooldown, g.ECS.Player.AttackCooldown)

	snap := g.Snapshot()
	require.Len(t, snap.Projectiles, 1)
	assert.InDelta(t, 328, snap.Projectiles[0].X, 1e-9)
	assert.InDelta(t, 480, snap.Projectiles[0].Y, 1e-9)
}

func TestContactDamageOverTenTicks(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player.Position
	spawnEnemyAt(g, p.X, p.Y, 1000)

	for i := 0; i < 10; i++ {
		require.True(t, g.Tick(input.Vector{}, nil).Processed)
	}
	assert.InDelta(t, 95, g.ECS.Player.Health, 1e-9)
	assert.Equal(t, component.Running, g.ECS.GameState.Phase)
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.ECS.Player.Health = 0.4
	p := g.ECS.Player.Position
	spawnEnemyAt(g, p.X, p.Y, 1000)

	overs := 0
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) { overs++ }), event.GameOver)

	g.Tick(input.Vector{}, nil)
	assert.Equal(t, component.Over, g.ECS.GameState.Phase)
	assert.Equal(t, 0.0, g.ECS.Player.Health)
	assert.Equal(t, 1, overs)

	tick := g.ECS.GameState.Tick
	r := g.Tick(input.Vector{X: 1}, []input.Action{input.Attack, input.TogglePause})
	assert.False(t, r.Processed)
	assert.Equal(t, tick, g.ECS.GameState.Tick)
	assert.Equal(t, component.Over, g.ECS.GameState.Phase)
	assert.Equal(t, 1, overs)
}

func TestBuildBaseThenOccupied(t *testing.T) {
	g := newTestGame(t, config.FullRules())

	r := g.Tick(input.Vector{}, []input.Action{input.BuildBase})
	require.Equal(t, []system.BuildResult{system.BuildOK}, r.Builds)
	assert.Equal(t, 0, g.ECS.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, 0, g.ECS.Player.Inventory.Count(gridmap.Silicon))
	assert.Equal(t, gridmap.Base, playerCell(g).Building)
	assert.Len(t, g.ECS.Buildings, 1)

	r = g.Tick(input.Vector{}, []input.Action{input.BuildBase})
	assert.Equal(t, []system.BuildResult{system.BuildOccupied}, r.Builds)

	assert.Equal(t, system.BuildInsufficient, g.EconomySystem.Build(0, 0, gridmap.Base))
	assert.Len(t, g.ECS.Buildings, 1)
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	start := g.ECS.Player.Position

	r := g.Tick(input.Vector{X: 1}, []input.Action{input.TogglePause})
	assert.False(t, r.Processed)
	assert.Equal(t, component.Paused, g.ECS.GameState.Phase)
	assert.Equal(t, start, g.ECS.Player.Position)
	assert.Equal(t, uint64(0), g.ECS.GameState.Tick)

	r = g.Tick(input.Vector{X: 1}, nil)
	assert.False(t, r.Processed)

	r = g.Tick(input.Vector{X: 1}, []input.Action{input.Resume})
	assert.True(t, r.Processed)
	assert.Equal(t, start.X+config.PlayerSpeed, g.ECS.Player.Position.X)
	assert.Equal(t, uint64(1), g.ECS.GameState.Tick)
}

func TestMovementClampedToField(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	for i := 0; i < 400; i++ {
		g.Tick(input.Vector{X: -5, Y: 5}, nil)
		if g.ECS.GameState.Phase != component.Running {
			break
		}
	}
	p := g.ECS.Player.Position
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, float64(config.MapHeight-1)*config.CellSize, p.Y)
	assert.Equal(t, system.CameraFor(p), g.ECS.Camera)
}

func TestWaveNeverDecreases(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	wave := g.ECS.GameState.Wave
	for i := 0; i < 6000; i++ {
		in := input.Vector{X: float64(i%3 - 1), Y: float64(i%5-2) / 2}
		g.Tick(in, []input.Action{input.Attack})
		require.GreaterOrEqual(t, g.ECS.GameState.Wave, wave)
		wave = g.ECS.GameState.Wave
		if g.ECS.GameState.Phase == component.Over {
			break
		}
	}
}

func TestSpawnsFarFromStart(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	start := component.Position{X: 320, Y: 480}
	for i := 0; i < 200; i++ {
		id := g.WaveSystem.SpawnEnemy()
		assert.Greater(t, start.DistanceTo(*g.ECS.Positions[id]), 300.0)
	}
}

func TestFirstSpawnAfterInterval(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	ticks := 0
	for len(g.ECS.Enemies) == 0 && ticks < 500 {
		g.Tick(input.Vector{}, nil)
		ticks++
	}
	// Интервал 2000 мс должен быть строго превышен, а время первого кадра — ноль.
	assert.Equal(t, 122, ticks)
}

func TestRelaxedScoutsScaleWithWave(t *testing.T) {
	g := newTestGame(t, config.RelaxedRules())
	g.ECS.GameState.Wave = 4
	for i := 0; i < 20; i++ {
		id := g.WaveSystem.SpawnEnemy()
		assert.Equal(t, defs.EnemyScout, g.ECS.Enemies[id].Type)
		assert.Equal(t, 10.0+4*2, g.ECS.Healths[id].Max)
		assert.InDelta(t, 1.5+4*0.1, g.ECS.Enemies[id].Speed, 1e-9)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, config.FullRules())
		for i := 0; i < 900; i++ {
			var actions []input.Action
			if i%30 == 0 {
				actions = append(actions, input.Attack)
			}
			g.Tick(input.Vector{X: 0.3, Y: -0.2}, actions)
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	assert.Equal(t, a.Grid, b.Grid)
	assert.Equal(t, a.Player, b.Player)
	assert.Equal(t, a.Enemies, b.Enemies)
	assert.Equal(t, a.Session, b.Session)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	snap := g.Snapshot()
	snap.Player.Inventory[gridmap.Iron] = 99
	snap.Grid.Cells[0].Building = gridmap.Base
	assert.Equal(t, 5, g.ECS.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, gridmap.NoBuilding, g.ECS.Grid.Cells[0].Building)
}

func TestSnapshotCountsLiveEnemies(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	spawnEnemyAt(g, 0, 0, 10)
	spawnEnemyAt(g, 10, 0, 0)
	snap := g.Snapshot()
	assert.Len(t, snap.Enemies, 2)
	assert.Equal(t, 1, snap.LiveEnemies)
}

func TestWeaponToast(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.Tick(input.Vector{}, []input.Action{input.SwitchWeapon})
	assert.Equal(t, component.Ranged, g.ECS.Player.Weapon)
	assert.Equal(t, component.Toast{Text: "RANGED", Timer: config.WeaponToastTicks}, g.ECS.Toast)

	for i := 0; i < config.WeaponToastTicks; i++ {
		g.Tick(input.Vector{}, nil)
	}
	assert.False(t, g.ECS.Toast.Active())
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, config.FullRules())

	ok, err := g.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing saved yet")

	g.ECS.Player.Inventory[gridmap.Iron] = 9
	require.Equal(t, system.BuildOK, g.EconomySystem.Build(3, 4, gridmap.Miner))
	g.ECS.GameState.Wave = 3
	g.ECS.GameState.Kills = 7
	sessionID := g.SessionID
	require.NoError(t, g.Save(ctx))

	g.ECS.Player.Inventory[gridmap.Iron] = 1
	g.ECS.Player.Position.X = 10
	spawnEnemyAt(g, 5, 5, 10)
	g.ProjectileSystem.Fire(component.Position{}, component.Velocity{DX: 1}, 1)
	require.NoError(t, g.Restart(1))
	assert.NotEqual(t, sessionID, g.SessionID)

	ok, err = g.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sessionID, g.SessionID)
	assert.Equal(t, 9-3, g.ECS.Player.Inventory.Count(gridmap.Iron))
	assert.Equal(t, 3, g.ECS.GameState.Wave)
	assert.Equal(t, 7, g.ECS.GameState.Kills)
	assert.Equal(t, gridmap.Miner, g.ECS.Grid.At(3, 4).Building)
	assert.Len(t, g.ECS.Buildings, 1)
	assert.Empty(t, g.ECS.Enemies)
	assert.Empty(t, g.ECS.Projectiles)
	assert.Equal(t, config.FullRules().SpawnInterval-2*config.FullRules().IntervalStep, g.WaveSystem.SpawnInterval)
}

func TestLoadClearsLiveEnemies(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, config.FullRules())
	require.NoError(t, g.Save(ctx))
	spawnEnemyAt(g, 5, 5, 10)
	g.ProjectileSystem.Fire(component.Position{}, component.Velocity{DX: 1}, 1)

	ok, err := g.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, g.ECS.Enemies)
	assert.Empty(t, g.ECS.Projectiles)
	assert.Empty(t, g.ECS.Positions)
}

func TestLoadRejectsCorruptSave(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	require.NoError(t, store.Put(ctx, config.SaveKey, []byte(`{"wave":1}`)))

	g, err := NewGame(Options{Seed: 3, Store: store})
	require.NoError(t, err)
	ok, err := g.Load(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, persistence.ErrInvalidSnapshot)
}

func TestRestartResetsCounters(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	g.ECS.GameState.Kills = 5
	g.ECS.GameState.Wave = 4
	g.ECS.Player.Health = 0
	g.Tick(input.Vector{}, nil)
	require.Equal(t, component.Over, g.ECS.GameState.Phase)

	require.NoError(t, g.Restart(99))
	snap := g.Snapshot()
	assert.Equal(t, component.Session{Phase: component.Running, Wave: 1, Day: 1}, snap.Session)
	assert.Equal(t, 100.0, snap.Player.Health)
	assert.Empty(t, snap.Buildings)
	assert.True(t, g.Tick(input.Vector{}, nil).Processed)
}

func TestDayAdvancesEverySol(t *testing.T) {
	g := newTestGame(t, config.FullRules())
	p := g.ECS.Player
	for i := 0; i < int(system.SolDuration/config.FrameDuration)+100; i++ {
		p.Health = p.MaxHealth
		g.Tick(input.Vector{}, nil)
	}
	assert.Equal(t, 2, g.ECS.GameState.Day)
}
