package system

import (
	"testing"

	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/defs"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/types"
	"go-mars-survival/internal/utils"
	"go-mars-survival/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	events     []event.Event
}

// newFixture собирает пустую карту из равнин и пишет все события в f.events.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	grid, err := gridmap.NewGrid(config.MapWidth, config.MapHeight, config.CellSize)
	require.NoError(t, err)

	f := &fixture{
		ecs:        entity.NewECS(grid),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
	}
	f.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		f.events = append(f.events, e)
	}), event.EnemySpawned, event.EnemyKilled, event.WaveAdvanced, event.GameOver,
		event.ResourceGathered, event.BuildingPlaced, event.WeaponSwitched)
	return f
}

func (f *fixture) enemy(x, y, hp, speed float64) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	f.ecs.Enemies[id] = &component.Enemy{Type: defs.EnemyScout, Speed: speed}
	return id
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	f := newFixture(t)
	id := f.enemy(0, 0, 10, 0)

	assert.False(t, ApplyDamage(f.ecs, id, 0))
	assert.True(t, ApplyDamage(f.ecs, id, 4))
	assert.Equal(t, 6.0, f.ecs.Healths[id].Value)
	assert.True(t, ApplyDamage(f.ecs, id, 100))
	assert.Equal(t, 0.0, f.ecs.Healths[id].Value)
	assert.False(t, ApplyDamage(f.ecs, 999, 5))
	assert.Empty(t, liveEnemyIDs(f.ecs))
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(config.FrameDuration)
	start := c.Now()
	for i := 0; i < 60; i++ {
		c.Advance()
	}
	assert.Equal(t, 60*config.FrameDuration, c.Now().Sub(start))
}
