package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(5)

	if b.Size() != 5 {
		t.Errorf("Size() = %d; want 5", b.Size())
	}
	for file := 0; file < 5; file++ {
		for rank := 0; rank < 5; rank++ {
			if !b.IsEmpty(Sq(file, rank)) {
				t.Errorf("IsEmpty(%v) = false; want true", Sq(file, rank))
			}
		}
	}
	if len(b.Pieces(White)) != 0 || len(b.Pieces(Black)) != 0 {
		t.Error("new board should hold no pieces")
	}
}

func TestBoard_InBounds(t *testing.T) {
	b := NewBoard(8)
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(-1, 0), false},
		{Sq(0, 8), false},
		{Sq(8, 3), false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.sq); got != tt.want {
			t.Errorf("InBounds(%v) = %v; want %v", tt.sq, got, tt.want)
		}
	}
	if b.At(Sq(9, 9)) != NoPiece {
		t.Error("At() off the board should be NoPiece")
	}
	if b.IsEmpty(Sq(-1, -1)) {
		t.Error("IsEmpty() off the board should be false")
	}
}

func TestBoard_Place(t *testing.T) {
	b := NewBoard(8)
	id, err := b.Place(Pawn, Black, Sq(4, 6))
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	p := b.Piece(id)
	if p.Loc != Sq(4, 6) || p.Kind != Pawn || p.Colour != Black || !p.Alive || p.Moved {
		t.Errorf("Place() piece = %+v", *p)
	}
	if p.Dir != -1 {
		t.Errorf("black pawn Dir = %d; want -1", p.Dir)
	}
	if b.At(Sq(4, 6)) != id {
		t.Errorf("At(e7) = %d; want %d", b.At(Sq(4, 6)), id)
	}

	if _, err := b.Place(Rook, White, Sq(4, 6)); err == nil {
		t.Error("Place() on occupied square should fail")
	}
	if _, err := b.Place(Rook, White, Sq(8, 0)); err == nil {
		t.Error("Place() off the board should fail")
	}
}

func TestBoard_Relocate(t *testing.T) {
	b := NewBoard(8)
	rook, _ := b.Place(Rook, White, Sq(0, 0))
	knight, _ := b.Place(Knight, Black, Sq(0, 5))

	captured := b.Relocate(rook, Sq(0, 5))
	if captured != knight {
		t.Errorf("Relocate() captured = %d; want %d", captured, knight)
	}
	if b.Piece(knight).Alive {
		t.Error("captured knight should not be alive")
	}
	if !b.IsEmpty(Sq(0, 0)) {
		t.Error("source square should be empty")
	}
	if b.At(Sq(0, 5)) != rook || b.Piece(rook).Loc != Sq(0, 5) || !b.Piece(rook).Moved {
		t.Errorf("rook = %+v after relocate", *b.Piece(rook))
	}
	if b.Count(Black) != 0 {
		t.Errorf("Count(Black) = %d; want 0", b.Count(Black))
	}

	if got := b.Relocate(rook, Sq(3, 5)); got != NoPiece {
		t.Errorf("quiet Relocate() captured = %d; want NoPiece", got)
	}
}

func TestBoard_PromoteAndRemove(t *testing.T) {
	b := NewBoard(8)
	pawn, _ := b.Place(Pawn, White, Sq(2, 7))

	queen := b.Promote(pawn, Queen)
	if queen == pawn {
		t.Fatal("Promote() should return a new handle")
	}
	if b.Piece(pawn).Alive {
		t.Error("promoted pawn should not be alive")
	}
	q := b.Piece(queen)
	if q.Kind != Queen || q.Colour != White || q.Loc != Sq(2, 7) || b.At(Sq(2, 7)) != queen {
		t.Errorf("Promote() queen = %+v", *q)
	}

	b.Remove(queen)
	if !b.IsEmpty(Sq(2, 7)) {
		t.Error("Remove() should clear the square")
	}
}

func TestBoard_Vacate(t *testing.T) {
	b := NewBoard(8)
	id, _ := b.Place(Bishop, White, Sq(2, 0))

	restore := b.Vacate(Sq(2, 0))
	if !b.IsEmpty(Sq(2, 0)) {
		t.Error("Vacate() should empty the square")
	}
	if b.Piece(id).Loc != Sq(2, 0) {
		t.Error("Vacate() must not move the piece")
	}
	restore()
	if b.At(Sq(2, 0)) != id {
		t.Error("restore() should put the piece back")
	}
}

func TestBoard_LocValue(t *testing.T) {
	b := NewBoard(8)
	b.Place(Queen, White, Sq(3, 0))
	b.Place(King, Black, Sq(4, 7))
	b.Place(Knight, Black, Sq(1, 7))

	tests := []struct {
		sq   Square
		want int
	}{
		{Sq(3, 0), 9},
		{Sq(4, 7), KingValue},
		{Sq(1, 7), 3},
		{Sq(4, 4), 0},
	}
	for _, tt := range tests {
		if got := b.LocValue(tt.sq); got != tt.want {
			t.Errorf("LocValue(%v) = %d; want %d", tt.sq, got, tt.want)
		}
	}
}

func TestBoard_Line(t *testing.T) {
	b := NewBoard(8)
	rook, _ := b.Place(Rook, White, Sq(0, 0))
	b.Place(Pawn, White, Sq(0, 3))
	b.Place(Bishop, Black, Sq(4, 0))

	t.Run("stops before own piece", func(t *testing.T) {
		moves := b.Line(rook, 0, 1, false)
		if len(moves) != 2 {
			t.Fatalf("Line(up) = %v; want 2 quiet moves", moves)
		}
		for _, m := range moves {
			if m.Value != 0 {
				t.Errorf("quiet move %v has value %d", m, m.Value)
			}
		}
	})

	t.Run("captures enemy and stops", func(t *testing.T) {
		moves := b.Line(rook, 1, 0, false)
		if len(moves) != 4 {
			t.Fatalf("Line(right) = %v; want 4 moves", moves)
		}
		last := moves[len(moves)-1]
		if last.To != Sq(4, 0) || last.Value != 3 {
			t.Errorf("last move = %v value %d; want capture on e1 worth 3", last, last.Value)
		}
	})

	t.Run("defense includes own piece", func(t *testing.T) {
		moves := b.Line(rook, 0, 1, true)
		if len(moves) != 3 || moves[2].To != Sq(0, 3) {
			t.Errorf("Line(up, defense) = %v; want to end on a4", moves)
		}
	})

	t.Run("off the board", func(t *testing.T) {
		if moves := b.Line(rook, -1, 0, false); len(moves) != 0 {
			t.Errorf("Line(left) = %v; want none", moves)
		}
	})
}

func TestBoard_LineThroughKing(t *testing.T) {
	b := NewBoard(8)
	rook, _ := b.Place(Rook, White, Sq(0, 4))
	b.Place(King, Black, Sq(4, 4))

	defense := b.Line(rook, 1, 0, true)
	last := defense[len(defense)-1]
	if last.To != Sq(5, 4) {
		t.Errorf("defense line should extend one square past the king, got %v", defense)
	}

	plain := b.Line(rook, 1, 0, false)
	if got := plain[len(plain)-1]; got.To != Sq(4, 4) || got.Value != KingValue {
		t.Errorf("plain line should end on the king with KingValue, got %v", plain)
	}
}

func TestBoard_KingAndClearEnPassant(t *testing.T) {
	b := NewBoard(8)
	if _, ok := b.King(White); ok {
		t.Error("King() on empty board should report false")
	}
	k, _ := b.Place(King, White, Sq(4, 0))
	p, _ := b.Place(Pawn, White, Sq(4, 3))
	b.Piece(p).EnPassant = true

	if got, ok := b.King(White); !ok || got != k {
		t.Errorf("King(White) = %d, %v; want %d", got, ok, k)
	}
	b.ClearEnPassant(White)
	if b.Piece(p).EnPassant {
		t.Error("ClearEnPassant() left the flag set")
	}
}

func TestBoard_Copy(t *testing.T) {
	b := NewStandardBoard()
	c := b.Copy()
	id := c.At(Sq(4, 1))
	c.Relocate(id, Sq(4, 3))

	if b.At(Sq(4, 1)) != id {
		t.Error("Copy() shares cells with the original")
	}
	if b.Piece(id).Loc != Sq(4, 1) {
		t.Error("Copy() shares pieces with the original")
	}
}
