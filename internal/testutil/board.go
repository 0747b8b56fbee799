package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
)

var layoutKinds = map[rune]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// ParseLayout builds a board from ranks separated by '/', highest rank
// first. Upper-case letters are White, lower-case Black, digits are runs of
// empty squares. The board size is the number of ranks. Pawns off their
// home rank are marked as moved.
func ParseLayout(layout string) (*chess.Board, bool) {
	rows := strings.Split(layout, "/")
	size := len(rows)
	b := chess.NewBoard(size)
	for i, row := range rows {
		rank := size - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '9' {
				file += int(c - '0')
				continue
			}
			kind, ok := layoutKinds[c|0x20]
			if !ok {
				return nil, false
			}
			colour := chess.Black
			if c < 'a' {
				colour = chess.White
			}
			id, err := b.Place(kind, colour, chess.Sq(file, rank))
			if err != nil {
				return nil, false
			}
			if kind == chess.Pawn && rank != homeRank(colour, size) {
				b.Piece(id).Moved = true
			}
			file++
		}
		if file != size {
			return nil, false
		}
	}
	return b, true
}

func homeRank(colour chess.Colour, size int) int {
	if colour == chess.White {
		return 1
	}
	return size - 2
}

// MustBoard is ParseLayout that fails the test on a bad layout.
func MustBoard(t testing.TB, layout string) *chess.Board {
	t.Helper()
	b, ok := ParseLayout(layout)
	if !ok {
		t.Fatalf("bad board layout %q", layout)
	}
	return b
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustPieceAt returns the handle on the named square or fails the test.
func MustPieceAt(t testing.TB, b *chess.Board, name string) chess.PieceID {
	t.Helper()
	id := b.At(MustSquare(t, name))
	if id == chess.NoPiece {
		t.Fatalf("no piece on %s", name)
	}
	return id
}

// Squares parses a list of algebraic square names.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, n := range names {
		squares = append(squares, MustSquare(t, n))
	}
	return squares
}

// Destinations lists the destination squares of moves, in order.
func Destinations(moves []chess.Move) []chess.Square {
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.To)
	}
	return squares
}
