package chess

import (
	"fmt"
	"sort"
)

// PieceID is a handle to a piece owned by a Board.
type PieceID int

// NoPiece marks an empty cell or a missing piece.
const NoPiece PieceID = -1

// Move is a candidate transition of one piece to a destination square.
type Move struct {
	// The piece being moved.
	Piece PieceID

	// Destination square.
	To Square

	// Value of the capture (0 for a quiet move). The selection policy
	// adjusts it in place when scoring candidates.
	Value int

	// Related is the dependent move of a compound move (the rook of a castle).
	Related *Move

	// SetsEnPassant marks a pawn double step.
	SetsEnPassant bool

	// EnPassantCapture marks a capture of the pawn behind the destination.
	EnPassantCapture bool
}

// Equal reports whether two moves take the same piece to the same square.
func (m Move) Equal(o Move) bool {
	return m.Piece == o.Piece && m.To == o.To
}

// IsCompound returns true if applying the move also applies a related move.
func (m Move) IsCompound() bool {
	return m.Related != nil
}

// String returns a short debugging representation of the move.
func (m Move) String() string {
	return fmt.Sprintf("<M #%d %v>", m.Piece, m.To)
}

// SortByValue orders moves by descending value, keeping the existing order
// of equally valued moves.
func SortByValue(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value > moves[j].Value
	})
}

// SquareSet is a set of squares.
type SquareSet map[Square]struct{}

// SquaresOf collects the destinations of the given moves.
func SquaresOf(moves []Move) SquareSet {
	set := make(SquareSet, len(moves))
	for _, m := range moves {
		set[m.To] = struct{}{}
	}
	return set
}

// Add inserts a square into the set.
func (s SquareSet) Add(sq Square) {
	s[sq] = struct{}{}
}

// Has reports whether the square is in the set.
func (s SquareSet) Has(sq Square) bool {
	_, ok := s[sq]
	return ok
}
