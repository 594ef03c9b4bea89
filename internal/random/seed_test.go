package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_FixedSeedIsReproducible(t *testing.T) {
	a, seed, err := NewSource(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	b, _, err := NewSource(42)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewSource_ZeroDrawsCryptoSeed(t *testing.T) {
	rng, seed, err := NewSource(0)
	require.NoError(t, err)
	assert.NotNil(t, rng)
	assert.NotZero(t, seed)
}
