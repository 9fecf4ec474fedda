package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-mars-survival/internal/component"
	"go-mars-survival/pkg/gridmap"
)

// ErrInvalidSnapshot — сохранение повреждено или не соответствует модели.
var ErrInvalidSnapshot = errors.New("persistence: invalid snapshot")

// Snapshot — то, что переживает перезапуск: игрок, карта, счётчики и постройки.
// Враги и пули не сохраняются.
type Snapshot struct {
	SessionID string               `json:"sessionId"`
	SavedAt   time.Time            `json:"savedAt"`
	Player    component.Player     `json:"player"`
	Grid      *gridmap.Grid        `json:"map"`
	Wave      int                  `json:"wave"`
	Kills     int                  `json:"kills"`
	Day       int                  `json:"day"`
	Buildings []component.Building `json:"buildings"`
}

// Validate проверяет снимок до восстановления партии.
func (s *Snapshot) Validate() error {
	if s.Grid == nil {
		return fmt.Errorf("%w: missing map", ErrInvalidSnapshot)
	}
	g := s.Grid
	if g.Width <= 0 || g.Height <= 0 || g.CellSize <= 0 {
		return fmt.Errorf("%w: map size %dx%d cell %.1f", ErrInvalidSnapshot, g.Width, g.Height, g.CellSize)
	}
	if len(g.Cells) != g.Width*g.Height {
		return fmt.Errorf("%w: %d cells for %dx%d map", ErrInvalidSnapshot, len(g.Cells), g.Width, g.Height)
	}
	for i, c := range g.Cells {
		if c.X != i%g.Width || c.Y != i/g.Width {
			return fmt.Errorf("%w: cell %d has coords (%d,%d)", ErrInvalidSnapshot, i, c.X, c.Y)
		}
	}

	if s.Wave < 1 || s.Kills < 0 || s.Day < 1 {
		return fmt.Errorf("%w: wave %d kills %d day %d", ErrInvalidSnapshot, s.Wave, s.Kills, s.Day)
	}

	p := s.Player
	if p.MaxHealth <= 0 || p.Health < 0 || p.Health > p.MaxHealth {
		return fmt.Errorf("%w: health %.1f/%.1f", ErrInvalidSnapshot, p.Health, p.MaxHealth)
	}
	if p.MaxEnergy <= 0 || p.Energy < 0 || p.Energy > p.MaxEnergy {
		return fmt.Errorf("%w: energy %.1f/%.1f", ErrInvalidSnapshot, p.Energy, p.MaxEnergy)
	}
	for r, n := range p.Inventory {
		if n < 0 {
			return fmt.Errorf("%w: negative %s count %d", ErrInvalidSnapshot, r, n)
		}
	}

	for _, b := range s.Buildings {
		cell := g.At(b.X, b.Y)
		if cell == nil || cell.Building != b.Kind {
			return fmt.Errorf("%w: building %s at (%d,%d) does not match map", ErrInvalidSnapshot, b.Kind, b.X, b.Y)
		}
	}
	if onMap := g.CountBuildings(gridmap.Miner) + g.CountBuildings(gridmap.Base); onMap != len(s.Buildings) {
		return fmt.Errorf("%w: %d buildings listed, %d on map", ErrInvalidSnapshot, len(s.Buildings), onMap)
	}
	return nil
}

// Encode сериализует снимок в JSON.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode разбирает и проверяет снимок.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Player.Inventory == nil {
		s.Player.Inventory = component.Inventory{}
	}
	return &s, nil
}
