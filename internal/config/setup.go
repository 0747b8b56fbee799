package config

import (
	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// SetupConfig holds settings for the starting position.
type SetupConfig struct {
	// BoardSize is the number of files and ranks.
	BoardSize int

	// Shuffle permutes the back rank between the rooks, mirrored for both colours.
	Shuffle bool

	// PawnProbability is the chance of each pawn being placed (0..1).
	PawnProbability float64
}

// NewSetupConfig creates a SetupConfig for the standard starting position.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{
		BoardSize:       chess.BoardSize,
		PawnProbability: 1,
	}
}

// Options converts the settings for the board builder.
func (s *SetupConfig) Options() chess.SetupOptions {
	return chess.SetupOptions{
		Size:            s.BoardSize,
		ShuffleBackRank: s.Shuffle,
		PawnProbability: s.PawnProbability,
	}
}

// Validate checks that the setup can be built.
func (s *SetupConfig) Validate() error {
	return errors.Wrap(s.Options().Validate(), "setup")
}
