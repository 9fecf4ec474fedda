// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — единственный источник случайности партии. Карта, спавн,
// выпадение железа и шахты берут броски отсюда в фиксированном порядке,
// поэтому один сид воспроизводит всю партию.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт генератор. Сид 0 заменяется текущим временем,
// фактический сид доступен через Seed.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed возвращает сид, с которым создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn — бросок в [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 — бросок в [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance возвращает true с вероятностью p.
// При p >= 1 бросок не делается, чтобы не сдвигать последовательность.
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
