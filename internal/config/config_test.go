package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/hunter-arena/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
	assert.Zero(t, cfg.RandomSeed)
	assert.Equal(t, game.DefaultRules(), cfg.Rules())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("HUNTER_SPAWN_CHANCE", "0.5")
	t.Setenv("CAPTURE_TURNS", "2")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 0.5, cfg.Rules().HunterSpawnChance)
	assert.Equal(t, 2, cfg.Rules().CaptureTurns)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("HUNTER_HP", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]string{
		"CRIT_CHANCE":       "1.5",
		"CAPTURE_CHANCE":    "-0.1",
		"HUNTER_HP":         "0",
		"HUNTER_MAX_DAMAGE": "0",
		"BUFF_TURNS":        "0",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
