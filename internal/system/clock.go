package system

import "time"

// Clock — источник времени для таймеров симуляции.
type Clock interface {
	Now() time.Time
}

// TickClock — детерминированные часы: время сдвигается только вызовом Advance.
type TickClock struct {
	now  time.Time
	step time.Duration
}

// NewTickClock создаёт часы, которые идут с шагом step за кадр.
func NewTickClock(step time.Duration) *TickClock {
	return &TickClock{now: time.Unix(0, 0).UTC(), step: step}
}

func (c *TickClock) Now() time.Time { return c.now }

// Advance сдвигает время на один кадр.
func (c *TickClock) Advance() { c.now = c.now.Add(c.step) }
