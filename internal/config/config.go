// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 400
	ScreenHeight = 700
	CellSize     = 32.0
	MapWidth     = 20
	MapHeight    = 30
	TicksPerSec  = 60

	PlayerStartCellX   = 10
	PlayerStartCellY   = 15
	PlayerSpeed        = 3.0
	PlayerMaxHealth    = 100.0
	PlayerMaxEnergy    = 100.0
	PlayerStartEnergy  = 50.0
	PlayerStartIron    = 5
	PlayerStartSilicon = 2

	// Ближний бой
	MeleeRadius   = 50.0
	MeleeDamage   = 25.0
	MeleeCooldown = 20 // кадров

	// Дальний бой
	ProjectileSpeed  = 8.0
	ProjectileDamage = 15.0
	RangedCooldown   = 15 // кадров
	ProjectileHitR   = 20.0
	ProjectileMargin = 100.0 // запас за границей поля, после которого пуля удаляется
	ProjectileRadius = 4.0

	ContactRadius      = 30.0
	GatherEnergyNeeded = 10.0

	MinSpawnInterval = 500 * time.Millisecond

	WeaponToastTicks = 60
	HitEffectTicks   = 10

	JoystickMaxDist = 40.0

	SaveKey = "mars1984_save"
)

// FrameDuration — длительность одного кадра симуляции.
const FrameDuration = time.Second / TicksPerSec

var (
	BackgroundColor = color.RGBA{0x2a, 0x1a, 0x0f, 255}
	GridLineColor   = color.RGBA{0, 0, 0, 51}
	TextLightColor  = color.RGBA{240, 240, 240, 255}

	TerrainColors = []color.RGBA{
		{0xc4, 0x4d, 0x34, 255}, // plain
		{0xa3, 0x3d, 0x2a, 255}, // crater
		{0xb3, 0x4d, 0x34, 255}, // hill
		{0x8b, 0x3d, 0x2a, 255}, // mountain
	}
	ResourceColors = []color.RGBA{
		{0, 0, 0, 0},            // none
		{0x9b, 0x9b, 0x9b, 255}, // iron
		{0xbd, 0x10, 0xe0, 255}, // silicon
		{0xf5, 0xa6, 0x23, 255}, // rareMetal
	}

	MinerColor      = color.RGBA{0x7e, 0xd3, 0x21, 255}
	BaseColor       = color.RGBA{0x4a, 0x90, 0xe2, 255}
	ChimneyColor    = color.RGBA{0x4a, 0x4a, 0x4a, 255}
	DomeColor       = color.RGBA{0xf5, 0xa6, 0x23, 255}
	PlayerColor     = color.RGBA{0x4a, 0x90, 0xe2, 255}
	HelmetColor     = color.RGBA{255, 255, 255, 255}
	EnemyColor      = color.RGBA{0xff, 0x44, 0x44, 255}
	EnemyHealthBar  = color.RGBA{0xff, 0, 0, 255}
	ProjectileColor = color.RGBA{0xff, 0xff, 0, 255}
	HealthBarColor  = color.RGBA{0, 0xff, 0, 255}
	EnergyBarColor  = color.RGBA{0xff, 0xff, 0, 255}
	CooldownColor   = color.RGBA{255, 255, 255, 77}
	HitEffectColor  = color.RGBA{255, 255, 255, 180}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	SwordColor      = color.RGBA{0xcc, 0xcc, 0xcc, 255}
	GunColor        = color.RGBA{0x33, 0x33, 0x33, 255}
)
