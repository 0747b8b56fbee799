package engine

import "github.com/lgbarn/selfplay-chess-go/internal/chess"

// pawnMoves generates pushes, diagonal captures and en passant captures.
// Promotion happens when the move is applied.
func pawnMoves(board *chess.Board, id chess.PieceID) []chess.Move {
	p := board.Piece(id)
	var moves []chess.Move

	one := p.Loc.Modified(0, p.Dir)
	if board.IsEmpty(one) {
		moves = append(moves, chess.Move{Piece: id, To: one})
		two := one.Modified(0, p.Dir)
		if !p.Moved && board.IsEmpty(two) {
			moves = append(moves, chess.Move{Piece: id, To: two, SetsEnPassant: true})
		}
	}

	for _, dx := range []int{-1, 1} {
		diag := p.Loc.Modified(dx, p.Dir)
		if occ, ok := board.Occupant(diag); ok && occ.Colour != p.Colour {
			moves = append(moves, chess.Move{Piece: id, To: diag, Value: board.LocValue(diag)})
		}

		side, ok := board.Occupant(p.Loc.Modified(dx, 0))
		if ok && side.Kind == chess.Pawn && side.Colour != p.Colour && side.EnPassant && board.IsEmpty(diag) {
			moves = append(moves, chess.Move{
				Piece:            id,
				To:               diag,
				Value:            chess.Pawn.Value(),
				EnPassantCapture: true,
			})
		}
	}
	return moves
}

// pawnAttacks returns both forward diagonals regardless of occupancy.
func pawnAttacks(board *chess.Board, id chess.PieceID) []chess.Move {
	p := board.Piece(id)
	var moves []chess.Move
	for _, dx := range []int{-1, 1} {
		if sq := p.Loc.Modified(dx, p.Dir); board.InBounds(sq) {
			moves = append(moves, chess.Move{Piece: id, To: sq, Value: board.LocValue(sq)})
		}
	}
	return moves
}

// lastRank returns the rank on which a pawn moving in dir promotes.
func lastRank(board *chess.Board, dir int) int {
	if dir > 0 {
		return board.Size() - 1
	}
	return 0
}
