// internal/event/types.go
package event

import (
	"go-mars-survival/internal/defs"
	"go-mars-survival/internal/types"
	"go-mars-survival/pkg/gridmap"
)

const (
	EnemySpawned     EventType = "EnemySpawned"     // Враг появился на краю поля
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен
	WaveAdvanced     EventType = "WaveAdvanced"     // Номер волны вырос
	GameOver         EventType = "GameOver"         // Здоровье игрока кончилось
	ResourceGathered EventType = "ResourceGathered" // Ресурс собран с клетки
	BuildingPlaced   EventType = "BuildingPlaced"   // Постройка возведена
	WeaponSwitched   EventType = "WeaponSwitched"
)

// EnemyData — данные для EnemySpawned и EnemyKilled.
type EnemyData struct {
	ID   types.EntityID
	Type defs.EnemyType
	X, Y float64
}

// WaveData — данные для WaveAdvanced.
type WaveData struct {
	Wave          int
	LiveEnemies   int
	SpawnInterval int64 // миллисекунды
}

// CellData — данные для ResourceGathered и BuildingPlaced.
type CellData struct {
	X, Y     int
	Resource gridmap.Resource
	Building gridmap.BuildingKind
	Amount   int
}
