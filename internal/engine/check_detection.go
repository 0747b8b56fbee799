package engine

import "github.com/lgbarn/selfplay-chess-go/internal/chess"

// OpponentMoves returns every move the king's opponent threatens, defended
// squares included: the defense-mode moves of its pieces, the diagonal
// attacks of its pawns and the neighbours of its king.
func OpponentMoves(board *chess.Board, king chess.PieceID) []chess.Move {
	k := board.Piece(king)
	var moves []chess.Move
	for _, id := range board.Pieces(k.Colour.Opposite()) {
		moves = append(moves, GenerateMoves(board, id, true)...)
	}
	return moves
}

// AttackedSquares returns the destinations of OpponentMoves.
func AttackedSquares(board *chess.Board, king chess.PieceID) chess.SquareSet {
	return chess.SquaresOf(OpponentMoves(board, king))
}

// InCheck returns the opponent moves landing on the king's square. The
// king is in check when the result is non-empty.
func InCheck(board *chess.Board, king chess.PieceID) []chess.Move {
	k := board.Piece(king)
	var checks []chess.Move
	for _, m := range OpponentMoves(board, king) {
		if m.To == k.Loc {
			checks = append(checks, m)
		}
	}
	return checks
}

// IsInCheck returns true if the colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour)
	if !ok {
		return false
	}
	return len(InCheck(board, king)) > 0
}

// checkers returns the distinct pieces giving check.
func checkers(checks []chess.Move) []chess.PieceID {
	var ids []chess.PieceID
	seen := make(map[chess.PieceID]bool, len(checks))
	for _, m := range checks {
		if !seen[m.Piece] {
			seen[m.Piece] = true
			ids = append(ids, m.Piece)
		}
	}
	return ids
}

// ResolveCheck picks a reply to check from the candidates, in fixed
// priority: the best capture of a lone checker, then a block between the
// king and a lone distant slider, then the first safe king move. It reports
// false when none exists, which is checkmate.
func ResolveCheck(board *chess.Board, king chess.PieceID, candidates, checks []chess.Move) (chess.Move, bool) {
	k := board.Piece(king)
	ids := checkers(checks)

	if len(ids) == 1 {
		checker := board.Piece(ids[0])

		best := -1
		for i, m := range candidates {
			if captures(board, m, checker) && (best < 0 || m.Value > candidates[best].Value) {
				best = i
			}
		}
		if best >= 0 {
			return candidates[best], true
		}

		if checker.Kind != chess.Knight && !checker.Loc.IsAdjacent(k.Loc) {
			if between, err := k.Loc.Between(checker.Loc); err == nil {
				block := make(chess.SquareSet, len(between))
				for _, sq := range between {
					block.Add(sq)
				}
				for _, m := range candidates {
					if m.Piece != king && block.Has(m.To) {
						return m, true
					}
				}
			}
		}
	}

	// A king stepping away along a slider's line stays attacked.
	excluded := chess.SquareSet{}
	for _, id := range ids {
		checker := board.Piece(id)
		if checker.Kind.IsSlider() {
			dx, dy := checker.Loc.Direction(k.Loc)
			excluded.Add(k.Loc.Modified(dx, dy))
		}
	}
	for _, m := range candidates {
		if m.Piece == king && m.Related == nil && !excluded.Has(m.To) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// captures reports whether the move removes the target piece.
func captures(board *chess.Board, m chess.Move, target *chess.Piece) bool {
	if m.To == target.Loc {
		return true
	}
	if !m.EnPassantCapture {
		return false
	}
	mover := board.Piece(m.Piece)
	return m.To.Modified(0, -chess.ColourOffset(mover.Colour)) == target.Loc
}
