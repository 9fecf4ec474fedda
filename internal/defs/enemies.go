// internal/defs/enemies.go
package defs

import "fmt"

// EnemyType — тип врага.
type EnemyType uint8

const (
	EnemyScout EnemyType = iota
	EnemyWarrior
	EnemyBoss
)

var enemyNames = [...]string{"scout", "warrior", "boss"}

func (t EnemyType) String() string {
	if int(t) < len(enemyNames) {
		return enemyNames[t]
	}
	return fmt.Sprintf("enemy(%d)", uint8(t))
}

func (t EnemyType) MarshalText() ([]byte, error) {
	if int(t) >= len(enemyNames) {
		return nil, fmt.Errorf("unknown enemy type %d", uint8(t))
	}
	return []byte(enemyNames[t]), nil
}

func (t *EnemyType) UnmarshalText(b []byte) error {
	for i, name := range enemyNames {
		if name == string(b) {
			*t = EnemyType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", b)
}

// EnemyDefinition holds the static stats for one enemy type.
type EnemyDefinition struct {
	Type   EnemyType
	Health float64
	Speed  float64
	Radius float32 // радиус отрисовки
}

// EnemyLibrary — базовые характеристики врагов, индекс совпадает с EnemyType.
var EnemyLibrary = [...]EnemyDefinition{
	EnemyScout:   {Type: EnemyScout, Health: 15, Speed: 1.5, Radius: 12},
	EnemyWarrior: {Type: EnemyWarrior, Health: 40, Speed: 1.0, Radius: 14},
	EnemyBoss:    {Type: EnemyBoss, Health: 150, Speed: 0.6, Radius: 18},
}

// Enemy возвращает определение врага по типу.
func Enemy(t EnemyType) (EnemyDefinition, bool) {
	if int(t) >= len(EnemyLibrary) {
		return EnemyDefinition{}, false
	}
	return EnemyLibrary[t], true
}
