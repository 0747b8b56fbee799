package chess

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// SetupOptions controls how the starting position is built.
type SetupOptions struct {
	// Size of the board. Full setups need BoardSize.
	Size int

	// ShuffleBackRank permutes the pieces between the rooks, mirrored for
	// both colours. Rooks stay in the corners.
	ShuffleBackRank bool

	// PawnProbability is the chance of each pawn being placed.
	PawnProbability float64
}

// DefaultSetup returns the options for the standard starting position.
func DefaultSetup() SetupOptions {
	return SetupOptions{
		Size:            BoardSize,
		PawnProbability: 1,
	}
}

// Validate checks the options for consistency.
func (o SetupOptions) Validate() error {
	if o.Size != BoardSize {
		return fmt.Errorf("board size %d (want %d): %w", o.Size, BoardSize, errors.ErrInvalidConfig)
	}
	if o.PawnProbability < 0 || o.PawnProbability > 1 {
		return fmt.Errorf("pawn probability %v: %w", o.PawnProbability, errors.ErrInvalidConfig)
	}
	return nil
}

var standardBackRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates a board in the standard starting position.
func NewStandardBoard() *Board {
	b, _ := NewBoardFromSetup(DefaultSetup(), nil)
	return b
}

// NewBoardFromSetup builds a starting position. rng supplies the back-rank
// shuffle and the pawn draws; it may be nil for the default options.
func NewBoardFromSetup(opts SetupOptions, rng *rand.Rand) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	backRank := make([]Kind, len(standardBackRank))
	copy(backRank, standardBackRank)
	if opts.ShuffleBackRank {
		inner := backRank[1 : len(backRank)-1]
		rng.Shuffle(len(inner), func(i, j int) {
			inner[i], inner[j] = inner[j], inner[i]
		})
	}

	b := NewBoard(opts.Size)
	last := opts.Size - 1
	for file, kind := range backRank {
		b.add(kind, White, Sq(file, 0))
		b.add(kind, Black, Sq(file, last))
	}
	for file := 0; file < opts.Size; file++ {
		if opts.PawnProbability >= 1 || rng.Float64() < opts.PawnProbability {
			b.add(Pawn, White, Sq(file, 1))
		}
		if opts.PawnProbability >= 1 || rng.Float64() < opts.PawnProbability {
			b.add(Pawn, Black, Sq(file, last-1))
		}
	}
	return b, nil
}
