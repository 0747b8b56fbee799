// Package engine provides move generation, check detection, move
// application and the self-play turn loop.
package engine

import "github.com/lgbarn/selfplay-chess-go/internal/chess"

// GenerateMoves returns the pseudo-legal candidates of a piece. With
// includeDefense set, captures of same-coloured pieces are reported too,
// marking the squares the piece protects; such moves are never played.
func GenerateMoves(board *chess.Board, id chess.PieceID, includeDefense bool) []chess.Move {
	p := board.Piece(id)
	if p == nil || !p.Alive {
		return nil
	}

	switch p.Kind {
	case chess.Pawn:
		if includeDefense {
			return pawnAttacks(board, id)
		}
		return pawnMoves(board, id)
	case chess.Knight:
		return knightMoves(board, id, includeDefense)
	case chess.Bishop:
		return slidingMoves(board, id, chess.DiagonalDirs, includeDefense)
	case chess.Rook:
		return slidingMoves(board, id, chess.StraightDirs, includeDefense)
	case chess.Queen:
		return slidingMoves(board, id, chess.KingDirs, includeDefense)
	case chess.King:
		if includeDefense {
			return kingReach(board, id)
		}
		return kingMoves(board, id)
	}
	return nil
}

// PseudoLegalMoves returns the candidates of every piece of a colour.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, id := range board.Pieces(colour) {
		moves = append(moves, GenerateMoves(board, id, false)...)
	}
	return moves
}

// slidingMoves is the union of the board lines in the given directions.
func slidingMoves(board *chess.Board, id chess.PieceID, dirs [][2]int, includeDefense bool) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		moves = append(moves, board.Line(id, d[0], d[1], includeDefense)...)
	}
	return moves
}

// knightMoves returns the in-bounds jumps onto empty or enemy squares.
func knightMoves(board *chess.Board, id chess.PieceID, includeDefense bool) []chess.Move {
	p := board.Piece(id)
	var moves []chess.Move
	for _, j := range chess.KnightJumps {
		sq := p.Loc.Modified(j[0], j[1])
		if !board.InBounds(sq) {
			continue
		}
		if occ, ok := board.Occupant(sq); ok && occ.Colour == p.Colour && !includeDefense {
			continue
		}
		moves = append(moves, chess.Move{Piece: id, To: sq, Value: board.LocValue(sq)})
	}
	return moves
}

// kingReach returns every in-bounds neighbour of a king regardless of
// occupancy.
func kingReach(board *chess.Board, id chess.PieceID) []chess.Move {
	p := board.Piece(id)
	var moves []chess.Move
	for _, d := range chess.KingDirs {
		if sq := p.Loc.Modified(d[0], d[1]); board.InBounds(sq) {
			moves = append(moves, chess.Move{Piece: id, To: sq, Value: board.LocValue(sq)})
		}
	}
	return moves
}
