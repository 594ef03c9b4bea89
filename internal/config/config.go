// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Ko-stant/hunter-arena/internal/game"
)

// Config is the full process configuration
type Config struct {
	Port         string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"json"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	RandomSeed   int64         `env:"RANDOM_SEED" envDefault:"0"`

	HunterSpawnChance float64 `env:"HUNTER_SPAWN_CHANCE" envDefault:"0.1"`
	HunterHP          int     `env:"HUNTER_HP" envDefault:"24"`
	HunterMaxDamage   int     `env:"HUNTER_MAX_DAMAGE" envDefault:"10"`
	CaptureChance     float64 `env:"CAPTURE_CHANCE" envDefault:"0.2"`
	CaptureTurns      int     `env:"CAPTURE_TURNS" envDefault:"3"`
	BuffTurns         int     `env:"BUFF_TURNS" envDefault:"3"`
	CritChance        float64 `env:"CRIT_CHANCE" envDefault:"0.15"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the process configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for name, p := range map[string]float64{
		"HUNTER_SPAWN_CHANCE": c.HunterSpawnChance,
		"CAPTURE_CHANCE":      c.CaptureChance,
		"CRIT_CHANCE":         c.CritChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, p)
		}
	}
	if c.HunterHP < 1 {
		return fmt.Errorf("HUNTER_HP must be positive, got %d", c.HunterHP)
	}
	if c.HunterMaxDamage < 1 {
		return fmt.Errorf("HUNTER_MAX_DAMAGE must be positive, got %d", c.HunterMaxDamage)
	}
	if c.CaptureTurns < 1 || c.BuffTurns < 1 {
		return fmt.Errorf("CAPTURE_TURNS and BUFF_TURNS must be positive")
	}
	return nil
}

// Rules maps the tuning values onto the engine
func (c Config) Rules() game.Rules {
	return game.Rules{
		HunterSpawnChance: c.HunterSpawnChance,
		HunterHP:          c.HunterHP,
		HunterMaxDamage:   c.HunterMaxDamage,
		CaptureChance:     c.CaptureChance,
		CaptureTurns:      c.CaptureTurns,
		BuffTurns:         c.BuffTurns,
		CritChance:        c.CritChance,
	}
}
