package engine

import "github.com/lgbarn/selfplay-chess-go/internal/chess"

// HasInsufficientMaterial returns true when the side with fewer pieces has
// only its king and the other side has nothing but its king plus one
// knight, two knights or one bishop.
func HasInsufficientMaterial(board *chess.Board) bool {
	weak := chess.White
	if board.Count(chess.Black) < board.Count(chess.White) {
		weak = chess.Black
	}
	if board.Count(weak) != 1 {
		return false
	}

	strong := weak.Opposite()
	if board.Count(strong) > 3 {
		return false
	}

	var knights, bishops int
	for _, id := range board.Pieces(strong) {
		switch board.Piece(id).Kind {
		case chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
		default:
			return false
		}
	}
	return (bishops == 0 && knights <= 2) || (bishops == 1 && knights == 0)
}
