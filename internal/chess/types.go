// Package chess provides core chess types and the arena board they live on.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type. The set is closed.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KingValue is the score of a square holding a king. It shares the scale of
// the material values and is only used for attack scoring.
const KingValue = 100

// Value returns the material value of a piece kind. Kings have no material
// value; see KingValue for the occupancy score.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// IsSlider reports whether the kind moves along lines.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// MoveClass categorizes the kinds of move application.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnDoubleStep
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn"
	case PawnDoubleStep:
		return "double-step"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en-passant"
	case PieceMove:
		return "piece"
	case KingsideCastle:
		return "kingside-castle"
	case QueensideCastle:
		return "queenside-castle"
	}
	return "unknown"
}

// IsCastle returns true if the class is a castling move.
func (c MoveClass) IsCastle() bool {
	return c == KingsideCastle || c == QueensideCastle
}

// BoardSize is the size of a standard board.
const BoardSize = 8
