package app

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/defs"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/types"
	"go-mars-survival/pkg/gridmap"
)

// EnemyView — враг глазами отрисовки.
type EnemyView struct {
	ID     types.EntityID
	Type   defs.EnemyType
	X, Y   float64
	Health component.Health
	Radius float64
}

// ProjectileView — пуля глазами отрисовки.
type ProjectileView struct {
	X, Y float64
}

// Snapshot — копия состояния для отрисовки и интерфейса. Изменения снимка
// не влияют на партию.
type Snapshot struct {
	SessionID   string
	Rules       string
	Grid        *gridmap.Grid
	Player      component.Player
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Buildings   []component.Building
	Camera      component.Position
	Session     component.Session
	LiveEnemies int
	Toast       component.Toast
	HitEffects  []component.HitEffect
}

// Snapshot снимает копию текущего состояния. Враги и пули идут по возрастанию ID.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		SessionID:  g.SessionID.String(),
		Rules:      g.Rules.Name,
		Grid:       ecs.Grid.Clone(),
		Player:     ecs.Player.Clone(),
		Buildings:  append([]component.Building(nil), ecs.Buildings...),
		Camera:     ecs.Camera,
		Session:    *ecs.GameState,
		Toast:      ecs.Toast,
		HitEffects: append([]component.HitEffect(nil), ecs.HitEffects...),
	}

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		view := EnemyView{ID: id, Type: ecs.Enemies[id].Type, X: pos.X, Y: pos.Y}
		if h, ok := ecs.Healths[id]; ok {
			view.Health = *h
			if h.Alive() {
				snap.LiveEnemies++
			}
		}
		if def, ok := defs.Enemy(view.Type); ok {
			view.Radius = float64(def.Radius)
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		if pos, ok := ecs.Positions[id]; ok {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{X: pos.X, Y: pos.Y})
		}
	}
	return snap
}
