package chess

import (
	"fmt"

	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// Square addresses a board cell by file (column) and rank (row), both
// zero-based. Rank 0 is White's home rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Modified returns the square shifted by dx files and dy ranks.
func (s Square) Modified(dx, dy int) Square {
	return Square{File: s.File + dx, Rank: s.Rank + dy}
}

// IsAdjacent reports whether o is one king step away from s.
func (s Square) IsAdjacent(o Square) bool {
	if s == o {
		return false
	}
	return abs(s.File-o.File) <= 1 && abs(s.Rank-o.Rank) <= 1
}

// Aligned reports whether s and o share a rank, file or exact diagonal.
func (s Square) Aligned(o Square) bool {
	df := abs(o.File - s.File)
	dr := abs(o.Rank - s.Rank)
	return df == 0 || dr == 0 || df == dr
}

// Between returns the squares strictly between s and o, ordered from s
// toward o. The pair must share a rank, file or diagonal.
func (s Square) Between(o Square) ([]Square, error) {
	if !s.Aligned(o) {
		return nil, fmt.Errorf("between %v and %v: %w", s, o, errors.ErrUnalignedSquares)
	}
	dx, dy := sign(o.File-s.File), sign(o.Rank-s.Rank)
	var squares []Square
	for cur := s.Modified(dx, dy); cur != o && cur != s; cur = cur.Modified(dx, dy) {
		squares = append(squares, cur)
	}
	return squares, nil
}

// Direction returns the unit step from s toward o.
func (s Square) Direction(o Square) (dx, dy int) {
	return sign(o.File - s.File), sign(o.Rank - s.Rank)
}

// String returns the algebraic name of the square (e.g. "e4").
func (s Square) String() string {
	if s.File < 0 || s.File >= 26 || s.Rank < 0 {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) < 2 || name[0] < 'a' || name[0] > 'z' {
		return Square{}, fmt.Errorf("parse square %q: %w", name, errors.ErrInvalidSquare)
	}
	rank := 0
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return Square{}, fmt.Errorf("parse square %q: %w", name, errors.ErrInvalidSquare)
		}
		rank = rank*10 + int(c-'0')
	}
	if rank < 1 {
		return Square{}, fmt.Errorf("parse square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{File: int(name[0] - 'a'), Rank: rank - 1}, nil
}

// Direction sets used by the sliding pieces and the king.
var (
	StraightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	DiagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	KingDirs     = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	KnightJumps  = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
