// pkg/gridmap/map.go
package gridmap

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize возвращается генератором при неположительных размерах карты.
var ErrInvalidSize = errors.New("gridmap: width and height must be positive")

// Пороги распределения поверхности. Накопительные отсечки сохраняются
// в точности, чтобы один и тот же сид давал ту же карту.
const (
	craterThreshold   = 0.2
	hillThreshold     = 0.4
	mountainThreshold = 0.5

	ironChance      = 0.10
	siliconChance   = 0.15
	rareMetalChance = 0.05
)

// RandomSource — минимальный источник случайности, нужный генератору.
// utils.PRNGService ему соответствует.
type RandomSource interface {
	Float64() float64
}

// Cell — одна клетка карты.
type Cell struct {
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Terrain  Terrain      `json:"type"`
	Resource Resource     `json:"resource"`
	Building BuildingKind `json:"building"`
}

// Grid — прямоугольная карта клеток, хранится построчно.
type Grid struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	CellSize float64 `json:"cellSize"`
	Cells    []Cell  `json:"cells"`
}

// NewGrid создаёт пустую карту из равнин без ресурсов.
func NewGrid(width, height int, cellSize float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Cells:    make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Cells[y*width+x] = Cell{X: x, Y: y}
		}
	}
	return g, nil
}

// Generate создаёт карту: для каждой клетки независимо выбирается поверхность,
// затем, в зависимости от поверхности, ресурс. Порядок обхода — строка за строкой.
func Generate(width, height int, cellSize float64, rng RandomSource) (*Grid, error) {
	g, err := NewGrid(width, height, cellSize)
	if err != nil {
		return nil, err
	}
	for i := range g.Cells {
		cell := &g.Cells[i]
		cell.Terrain = rollTerrain(rng.Float64())
		cell.Resource = rollResource(cell.Terrain, rng.Float64())
	}
	return g, nil
}

func rollTerrain(r float64) Terrain {
	switch {
	case r < craterThreshold:
		return Crater
	case r < hillThreshold:
		return Hill
	case r < mountainThreshold:
		return Mountain
	default:
		return Plain
	}
}

func rollResource(t Terrain, r float64) Resource {
	switch {
	case t == Plain && r < ironChance:
		return Iron
	case t == Hill && r < siliconChance:
		return Silicon
	case t == Mountain && r < rareMetalChance:
		return RareMetal
	default:
		return None
	}
}

// ResourceFor возвращает единственный ресурс, который может лежать на данной поверхности.
func ResourceFor(t Terrain) Resource {
	switch t {
	case Plain:
		return Iron
	case Hill:
		return Silicon
	case Mountain:
		return RareMetal
	default:
		return None
	}
}

// Contains проверяет, что координаты лежат внутри карты.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At возвращает клетку по координатам или nil, если она вне карты.
func (g *Grid) At(x, y int) *Cell {
	if !g.Contains(x, y) {
		return nil
	}
	return &g.Cells[y*g.Width+x]
}

// CellAt переводит мировые координаты в координаты клетки.
func (g *Grid) CellAt(worldX, worldY float64) (int, int) {
	return int(math.Floor(worldX / g.CellSize)), int(math.Floor(worldY / g.CellSize))
}

// Bounds возвращает размер игрового поля в мировых единицах.
func (g *Grid) Bounds() (float64, float64) {
	return float64(g.Width) * g.CellSize, float64(g.Height) * g.CellSize
}

// Clone делает глубокую копию карты (для снимков состояния).
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	c := *g
	c.Cells = make([]Cell, len(g.Cells))
	copy(c.Cells, g.Cells)
	return &c
}

// CountBuildings считает постройки указанного типа.
func (g *Grid) CountBuildings(kind BuildingKind) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Building == kind {
			n++
		}
	}
	return n
}
