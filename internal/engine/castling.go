package engine

import "github.com/lgbarn/selfplay-chess-go/internal/chess"

// kingMoves returns the king steps onto empty or enemy squares that the
// opponent does not attack, plus any castling moves.
func kingMoves(board *chess.Board, id chess.PieceID) []chess.Move {
	k := board.Piece(id)
	attacked := AttackedSquares(board, id)

	var moves []chess.Move
	for _, d := range chess.KingDirs {
		sq := k.Loc.Modified(d[0], d[1])
		if !board.InBounds(sq) || attacked.Has(sq) {
			continue
		}
		if occ, ok := board.Occupant(sq); ok && occ.Colour == k.Colour {
			continue
		}
		moves = append(moves, chess.Move{Piece: id, To: sq, Value: board.LocValue(sq)})
	}

	if !k.Moved {
		moves = append(moves, castlingMoves(board, id, attacked)...)
	}
	return moves
}

// castlingMoves returns a compound move toward each corner holding an
// unmoved rook of the king's colour, when every square from the king to the
// rook is empty and neither those squares nor the king's start and
// destination are attacked.
func castlingMoves(board *chess.Board, id chess.PieceID, attacked chess.SquareSet) []chess.Move {
	k := board.Piece(id)
	if attacked.Has(k.Loc) {
		return nil
	}

	var moves []chess.Move
	for _, corner := range []int{board.Size() - 1, 0} {
		rookSq := chess.Sq(corner, k.Loc.Rank)
		rook, ok := board.Occupant(rookSq)
		if !ok || rook.Kind != chess.Rook || rook.Colour != k.Colour || rook.Moved {
			continue
		}
		if abs(corner-k.Loc.File) < 3 {
			continue
		}

		path, err := k.Loc.Between(rookSq)
		if err != nil {
			continue
		}
		if !pathClear(board, path, attacked) {
			continue
		}

		dir, _ := k.Loc.Direction(rookSq)
		dest := k.Loc.Modified(2*dir, 0)
		if attacked.Has(dest) {
			continue
		}
		moves = append(moves, chess.Move{
			Piece:   id,
			To:      dest,
			Related: &chess.Move{Piece: rook.ID, To: k.Loc.Modified(dir, 0)},
		})
	}
	return moves
}

// pathClear reports whether every square is empty and unattacked.
func pathClear(board *chess.Board, path []chess.Square, attacked chess.SquareSet) bool {
	for _, sq := range path {
		if !board.IsEmpty(sq) || attacked.Has(sq) {
			return false
		}
	}
	return true
}
