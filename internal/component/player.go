// internal/component/player.go
package component

import (
	"fmt"

	"go-mars-survival/internal/defs"
	"go-mars-survival/pkg/gridmap"
)

// Weapon — текущее оружие игрока.
type Weapon uint8

const (
	Melee Weapon = iota
	Ranged
)

func (w Weapon) String() string {
	switch w {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	default:
		return fmt.Sprintf("weapon(%d)", uint8(w))
	}
}

func (w Weapon) MarshalText() ([]byte, error) {
	if w > Ranged {
		return nil, fmt.Errorf("unknown weapon %d", uint8(w))
	}
	return []byte(w.String()), nil
}

func (w *Weapon) UnmarshalText(b []byte) error {
	switch string(b) {
	case "melee":
		*w = Melee
	case "ranged":
		*w = Ranged
	default:
		return fmt.Errorf("unknown weapon %q", b)
	}
	return nil
}

// Inventory — количество каждого ресурса у игрока. Значения никогда не отрицательны.
type Inventory map[gridmap.Resource]int

// Count возвращает количество ресурса.
func (inv Inventory) Count(r gridmap.Resource) int {
	return inv[r]
}

// Add увеличивает запас ресурса. Отрицательные n игнорируются.
func (inv Inventory) Add(r gridmap.Resource, n int) {
	if n <= 0 || r == gridmap.None {
		return
	}
	inv[r] += n
}

// CanAfford проверяет, хватает ли ресурсов на постройку.
func (inv Inventory) CanAfford(c defs.Cost) bool {
	return inv[gridmap.Iron] >= c.Iron &&
		inv[gridmap.Silicon] >= c.Silicon &&
		inv[gridmap.RareMetal] >= c.RareMetal
}

// Spend списывает стоимость, только если её хватает целиком.
func (inv Inventory) Spend(c defs.Cost) bool {
	if !c.Valid() || !inv.CanAfford(c) {
		return false
	}
	inv[gridmap.Iron] -= c.Iron
	inv[gridmap.Silicon] -= c.Silicon
	inv[gridmap.RareMetal] -= c.RareMetal
	return true
}

// Clone копирует инвентарь.
func (inv Inventory) Clone() Inventory {
	c := make(Inventory, len(inv))
	for k, v := range inv {
		c[k] = v
	}
	return c
}

// Player хранит состояние персонажа. Экземпляр ровно один на сессию.
type Player struct {
	Position       Position  `json:"position"`
	Health         float64   `json:"health"`
	MaxHealth      float64   `json:"maxHealth"`
	Energy         float64   `json:"energy"`
	MaxEnergy      float64   `json:"maxEnergy"`
	Inventory      Inventory `json:"resources"`
	AttackCooldown int       `json:"attackCooldown"`
	Weapon         Weapon    `json:"weapon"`
	Facing         Velocity  `json:"facing"` // последнее ненулевое направление движения
}

// Clone делает глубокую копию игрока.
func (p *Player) Clone() Player {
	c := *p
	c.Inventory = p.Inventory.Clone()
	return c
}
