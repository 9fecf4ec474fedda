package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsSeeded(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(4), b.Intn(4))
	}
	assert.Equal(t, int64(7), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestChanceEdges(t *testing.T) {
	s := NewPRNGService(1)
	ref := NewPRNGService(1)
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
	// крайние значения не расходуют бросок
	assert.Equal(t, ref.Float64(), s.Float64())
}

func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(3, 4)
	assert.True(t, ok)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	_, _, ok = Normalize(0, 0)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
}
