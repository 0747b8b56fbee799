package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// PlayConfig holds settings for running games.
type PlayConfig struct {
	// Games is the number of games to play.
	Games int

	// Workers is the number of games played concurrently.
	Workers int

	// MaxPlies stops a game after this many half-moves (0 = no limit).
	MaxPlies int

	// Seed is the base seed; game i uses Seed+i.
	Seed int64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Games:    1,
		Workers:  runtime.NumCPU(),
		MaxPlies: 500,
		Seed:     1,
	}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.Games < 1 {
		return fmt.Errorf("games (%d) must be positive: %w", p.Games, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be positive: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
