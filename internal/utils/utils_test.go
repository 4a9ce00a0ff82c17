package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lab-backdrop/internal/utils"
)

func TestSeededRangesAreReproducible(t *testing.T) {
	a := utils.NewPRNGService(42)
	b := utils.NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Range(1, 3), b.Range(1, 3))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestRangeAndSpreadBounds(t *testing.T) {
	rng := utils.NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := rng.Range(0.01, 0.03)
		assert.GreaterOrEqual(t, v, 0.01)
		assert.Less(t, v, 0.03)

		s := rng.Spread(0.4)
		assert.GreaterOrEqual(t, s, -0.4)
		assert.Less(t, s, 0.4)
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	assert.NotZero(t, utils.NewPRNGService(0).Seed())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.2, utils.Clamp(0.1, 0.2, 0.7))
	assert.Equal(t, 0.7, utils.Clamp(0.9, 0.2, 0.7))
	assert.Equal(t, 0.5, utils.Clamp(0.5, 0.2, 0.7))
}
