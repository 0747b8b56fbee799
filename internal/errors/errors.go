// Package errors provides sentinel errors and error types for the self-play engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a square outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrSquareOccupied indicates a placement onto a square that already holds a piece.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrUnalignedSquares indicates a geometric query on squares that share
	// no rank, file or diagonal.
	ErrUnalignedSquares = errors.New("squares are not aligned")

	// ErrIllegalEnPassant indicates an en passant capture with no eligible
	// pawn behind the destination. It is a warning: the move is still applied.
	ErrIllegalEnPassant = errors.New("no en passant target")

	// ErrUnknownPiece indicates a move of a piece that is not on the board.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrMissingKing indicates a board without a king for one side.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including the game ID,
// ply and square involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	PlyNum int    // Ply number where error occurred (0 if not applicable)
	Square string // Square involved (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "game error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
