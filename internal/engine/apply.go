package engine

import (
	"fmt"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// ApplyMove applies a move to the board and returns its class.
// The related move of a compound move is applied once, never recursively.
// An en passant capture without an eligible pawn behind the destination
// returns errors.ErrIllegalEnPassant; the rest of the move is still applied
// and the board stays consistent.
func ApplyMove(board *chess.Board, move chess.Move) (chess.MoveClass, error) {
	p := board.Piece(move.Piece)
	if p == nil || !p.Alive {
		return chess.PieceMove, fmt.Errorf("move #%d to %v: %w", move.Piece, move.To, errors.ErrUnknownPiece)
	}

	class := classify(p, move)
	kind := p.Kind
	colour := p.Colour

	board.Relocate(move.Piece, move.To)
	if move.Related != nil {
		if rp := board.Piece(move.Related.Piece); rp != nil && rp.Alive {
			board.Relocate(move.Related.Piece, move.Related.To)
		}
	}

	if move.SetsEnPassant {
		p.EnPassant = true
	}

	var warning error
	if move.EnPassantCapture {
		warning = captureEnPassant(board, move.To, colour)
	}

	if kind == chess.Pawn && move.To.Rank == lastRank(board, chess.ColourOffset(colour)) {
		board.Promote(move.Piece, chess.Queen)
		class = chess.PawnMoveWithPromotion
	}
	return class, warning
}

// captureEnPassant removes the enemy pawn directly behind the destination.
func captureEnPassant(board *chess.Board, to chess.Square, colour chess.Colour) error {
	behind := to.Modified(0, -chess.ColourOffset(colour))
	victim, ok := board.Occupant(behind)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == colour || !victim.EnPassant {
		return fmt.Errorf("en passant to %v, nothing to take on %v: %w", to, behind, errors.ErrIllegalEnPassant)
	}
	board.Remove(victim.ID)
	return nil
}

// classify returns the class of a move before it is applied.
func classify(p *chess.Piece, move chess.Move) chess.MoveClass {
	switch p.Kind {
	case chess.Pawn:
		switch {
		case move.EnPassantCapture:
			return chess.EnPassantPawnMove
		case move.SetsEnPassant:
			return chess.PawnDoubleStep
		}
		return chess.PawnMove
	case chess.King:
		if move.Related != nil {
			if move.To.File > p.Loc.File {
				return chess.KingsideCastle
			}
			return chess.QueensideCastle
		}
	}
	return chess.PieceMove
}
