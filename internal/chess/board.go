package chess

import (
	"fmt"

	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// Piece is a piece record owned by a Board.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour

	// Loc always matches the cell holding the piece while it is alive.
	Loc   Square
	Moved bool
	Alive bool

	// Pawn only: forward rank step and en passant eligibility.
	Dir       int
	EnPassant bool
}

// Board is a size×size grid. Cells hold handles into the board's piece
// arena; handles are never reused, so a captured piece stays addressable.
type Board struct {
	size   int
	cells  []PieceID
	pieces []Piece
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) *Board {
	b := &Board{
		size:  size,
		cells: make([]PieceID, size*size),
	}
	for i := range b.cells {
		b.cells[i] = NoPiece
	}
	return b
}

// Size returns the number of files (and ranks) of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether the square lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.File >= 0 && sq.File < b.size && sq.Rank >= 0 && sq.Rank < b.size
}

func (b *Board) index(sq Square) int {
	return sq.Rank*b.size + sq.File
}

// At returns the handle of the piece on the square, or NoPiece.
func (b *Board) At(sq Square) PieceID {
	if !b.InBounds(sq) {
		return NoPiece
	}
	return b.cells[b.index(sq)]
}

// IsEmpty reports whether the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.InBounds(sq) && b.cells[b.index(sq)] == NoPiece
}

// Piece returns the piece record for a handle. The pointer stays valid
// until the next Place or Promote.
func (b *Board) Piece(id PieceID) *Piece {
	if id < 0 || int(id) >= len(b.pieces) {
		return nil
	}
	return &b.pieces[id]
}

// Occupant returns the piece on the square, if any.
func (b *Board) Occupant(sq Square) (*Piece, bool) {
	id := b.At(sq)
	if id == NoPiece {
		return nil, false
	}
	return &b.pieces[id], true
}

// Place puts a new piece on an empty square.
func (b *Board) Place(kind Kind, colour Colour, sq Square) (PieceID, error) {
	if !b.InBounds(sq) {
		return NoPiece, fmt.Errorf("place %v on %v: %w", kind, sq, errors.ErrInvalidSquare)
	}
	if b.At(sq) != NoPiece {
		return NoPiece, fmt.Errorf("place %v on %v: %w", kind, sq, errors.ErrSquareOccupied)
	}
	return b.add(kind, colour, sq), nil
}

func (b *Board) add(kind Kind, colour Colour, sq Square) PieceID {
	id := PieceID(len(b.pieces))
	p := Piece{
		ID:     id,
		Kind:   kind,
		Colour: colour,
		Loc:    sq,
		Alive:  true,
	}
	if kind == Pawn {
		p.Dir = ColourOffset(colour)
	}
	b.pieces = append(b.pieces, p)
	b.cells[b.index(sq)] = id
	return id
}

// Relocate moves a piece to a square, removing any occupant there, and
// marks it as moved. It returns the captured handle or NoPiece.
func (b *Board) Relocate(id PieceID, to Square) PieceID {
	p := &b.pieces[id]
	captured := b.At(to)
	if captured != NoPiece && captured != id {
		b.pieces[captured].Alive = false
	} else {
		captured = NoPiece
	}
	if b.cells[b.index(p.Loc)] == id {
		b.cells[b.index(p.Loc)] = NoPiece
	}
	b.cells[b.index(to)] = id
	p.Loc = to
	p.Moved = true
	return captured
}

// Remove takes a piece off the board.
func (b *Board) Remove(id PieceID) {
	p := &b.pieces[id]
	if !p.Alive {
		return
	}
	if b.cells[b.index(p.Loc)] == id {
		b.cells[b.index(p.Loc)] = NoPiece
	}
	p.Alive = false
}

// Promote replaces a piece in place with a new piece of the given kind and
// the same colour, returning the new handle.
func (b *Board) Promote(id PieceID, kind Kind) PieceID {
	old := b.pieces[id]
	b.Remove(id)
	nid := b.add(kind, old.Colour, old.Loc)
	b.pieces[nid].Moved = true
	return nid
}

// Vacate empties a square without moving its piece and returns the func
// that puts the piece back. The piece keeps its Loc meanwhile.
func (b *Board) Vacate(sq Square) (restore func()) {
	i := b.index(sq)
	id := b.cells[i]
	b.cells[i] = NoPiece
	return func() {
		b.cells[i] = id
	}
}

// Pieces returns the handles of the live pieces of a colour.
func (b *Board) Pieces(colour Colour) []PieceID {
	var ids []PieceID
	for i := range b.pieces {
		if b.pieces[i].Alive && b.pieces[i].Colour == colour {
			ids = append(ids, b.pieces[i].ID)
		}
	}
	return ids
}

// Count returns the number of live pieces of a colour, king included.
func (b *Board) Count(colour Colour) int {
	n := 0
	for i := range b.pieces {
		if b.pieces[i].Alive && b.pieces[i].Colour == colour {
			n++
		}
	}
	return n
}

// King returns the handle of the colour's king.
func (b *Board) King(colour Colour) (PieceID, bool) {
	for i := range b.pieces {
		p := &b.pieces[i]
		if p.Alive && p.Colour == colour && p.Kind == King {
			return p.ID, true
		}
	}
	return NoPiece, false
}

// ClearEnPassant drops en passant eligibility from the colour's pawns.
func (b *Board) ClearEnPassant(colour Colour) {
	for i := range b.pieces {
		if b.pieces[i].Colour == colour {
			b.pieces[i].EnPassant = false
		}
	}
}

// LocValue scores the occupant of a square: 0 when empty, KingValue for a
// king, the material value otherwise.
func (b *Board) LocValue(sq Square) int {
	p, ok := b.Occupant(sq)
	if !ok {
		return 0
	}
	if p.Kind == King {
		return KingValue
	}
	return p.Kind.Value()
}

// Line walks from the mover's square in direction (dx, dy). Each empty
// square yields a quiet move. The first occupied square yields a capture
// when its occupant is an enemy, or always when includeDefense is set, and
// ends the walk. In defense mode an enemy king does not stop the line: the
// square behind it is recorded as well.
func (b *Board) Line(mover PieceID, dx, dy int, includeDefense bool) []Move {
	p := &b.pieces[mover]
	var moves []Move
	for sq := p.Loc.Modified(dx, dy); b.InBounds(sq); sq = sq.Modified(dx, dy) {
		occ := b.At(sq)
		if occ == NoPiece {
			moves = append(moves, Move{Piece: mover, To: sq})
			continue
		}
		target := &b.pieces[occ]
		if includeDefense || target.Colour != p.Colour {
			moves = append(moves, Move{Piece: mover, To: sq, Value: b.LocValue(sq)})
			if includeDefense && target.Kind == King && target.Colour != p.Colour {
				if beyond := sq.Modified(dx, dy); b.InBounds(beyond) {
					moves = append(moves, Move{Piece: mover, To: beyond})
				}
			}
		}
		break
	}
	return moves
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{
		size:   b.size,
		cells:  make([]PieceID, len(b.cells)),
		pieces: make([]Piece, len(b.pieces)),
	}
	copy(nb.cells, b.cells)
	copy(nb.pieces, b.pieces)
	return nb
}
