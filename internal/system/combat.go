package system

import (
	"go-mars-survival/internal/component"
	"go-mars-survival/internal/config"
	"go-mars-survival/internal/entity"
	"go-mars-survival/internal/event"
	"go-mars-survival/internal/utils"
	"go-mars-survival/pkg/gridmap"
)

// AttackResult — итог попытки атаки. Неудачи не являются ошибками.
type AttackResult int

const (
	AttackHit        AttackResult = iota // удар ближнего боя задел хотя бы одного врага
	AttackMissed                         // удар прошёл мимо, оружие осталось готовым
	AttackFired                          // выпущена пуля
	AttackOnCooldown                     // оружие перезаряжается
	AttackNoAmmo                         // нет железа для выстрела
)

func (r AttackResult) String() string {
	switch r {
	case AttackHit:
		return "hit"
	case AttackMissed:
		return "missed"
	case AttackFired:
		return "fired"
	case AttackOnCooldown:
		return "cooldown"
	case AttackNoAmmo:
		return "no ammo"
	default:
		return "unknown"
	}
}

var weaponToasts = map[component.Weapon]string{
	component.Melee:  "MELEE",
	component.Ranged: "RANGED",
}

// CombatSystem отвечает за атаки игрока, контактный урон и таймеры боя.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
	rules           config.Rules
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem, rules config.Rules) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
		rules:           rules,
	}
}

// UpdateTimers уменьшает перезарядку и таймеры временных эффектов на один кадр.
func (s *CombatSystem) UpdateTimers() {
	player := s.ecs.Player
	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}
	if s.ecs.Toast.Timer > 0 {
		s.ecs.Toast.Timer--
	}

	effects := s.ecs.HitEffects[:0]
	for _, fx := range s.ecs.HitEffects {
		fx.Timer--
		if fx.Timer > 0 {
			effects = append(effects, fx)
		}
	}
	s.ecs.HitEffects = effects
}

// Attack атакует текущим оружием. aim — направление ввода для выстрела.
func (s *CombatSystem) Attack(aim component.Velocity) AttackResult {
	if s.ecs.Player.Weapon == component.Ranged {
		return s.Ranged(aim)
	}
	return s.Melee()
}

// Melee бьёт всех живых врагов в радиусе удара одновременно, без ограничения
// числа целей и независимо от направления. Перезарядка начинается только после попадания.
func (s *CombatSystem) Melee() AttackResult {
	player := s.ecs.Player
	if player.AttackCooldown > 0 {
		return AttackOnCooldown
	}

	result := AttackMissed
	for _, id := range liveEnemyIDs(s.ecs) {
		pos := s.ecs.Positions[id]
		if player.Position.DistanceTo(*pos) >= config.MeleeRadius {
			continue
		}
		ApplyDamage(s.ecs, id, config.MeleeDamage)
		s.ecs.HitEffects = append(s.ecs.HitEffects, component.HitEffect{
			X: pos.X, Y: pos.Y, Timer: config.HitEffectTicks,
		})
		result = AttackHit
	}
	if result == AttackHit {
		player.AttackCooldown = config.MeleeCooldown
	}
	return result
}

// Ranged выпускает пулю по нормированному направлению aim. Для нулевого
// вектора используется направление взгляда игрока. Тратит одну единицу железа.
func (s *CombatSystem) Ranged(aim component.Velocity) AttackResult {
	player := s.ecs.Player
	if player.AttackCooldown > 0 {
		return AttackOnCooldown
	}
	if player.Inventory.Count(gridmap.Iron) <= 0 {
		return AttackNoAmmo
	}

	dx, dy, ok := utils.Normalize(aim.DX, aim.DY)
	if !ok {
		dx, dy, ok = utils.Normalize(player.Facing.DX, player.Facing.DY)
		if !ok {
			dx, dy = 1, 0
		}
	}

	s.projectiles.Fire(player.Position, component.Velocity{
		DX: dx * config.ProjectileSpeed,
		DY: dy * config.ProjectileSpeed,
	}, config.ProjectileDamage)
	player.Inventory[gridmap.Iron]--
	player.AttackCooldown = config.RangedCooldown
	return AttackFired
}

// SwitchWeapon переключает оружие и показывает уведомление.
func (s *CombatSystem) SwitchWeapon() {
	player := s.ecs.Player
	if player.Weapon == component.Melee {
		player.Weapon = component.Ranged
	} else {
		player.Weapon = component.Melee
	}
	s.ecs.Toast = component.Toast{Text: weaponToasts[player.Weapon], Timer: config.WeaponToastTicks}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponSwitched, Data: player.Weapon})
}

// ApplyContactDamage — каждый враг в радиусе касания отнимает здоровье каждый кадр.
// Вызывается до движения врагов и до уборки убитых: враг, добитый в этом кадре,
// успевает ударить последний раз.
func (s *CombatSystem) ApplyContactDamage() {
	player := s.ecs.Player
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if player.Position.DistanceTo(*s.ecs.Positions[id]) < config.ContactRadius {
			player.Health -= s.rules.ContactDamage
		}
	}
}

// RemoveDead удаляет врагов с нулевым здоровьем и сообщает об этом.
func (s *CombatSystem) RemoveDead() int {
	removed := 0
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		health, ok := s.ecs.Healths[id]
		if ok && health.Alive() {
			continue
		}
		data := event.EnemyData{ID: id, Type: s.ecs.Enemies[id].Type}
		if pos, ok := s.ecs.Positions[id]; ok {
			data.X, data.Y = pos.X, pos.Y
		}
		s.ecs.RemoveEntity(id)
		removed++
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	}
	return removed
}
