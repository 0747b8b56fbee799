package engine

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// Draw reasons reported in Outcome.Reason.
const (
	DrawNoLegalMoves         = "no legal moves"
	DrawInsufficientMaterial = "insufficient material"
)

// OutcomeKind classifies the state of a game after a turn.
type OutcomeKind int

const (
	Continuing OutcomeKind = iota
	Checkmate
	Draw
	MoveLimitReached
	Stopped
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Continuing:
		return "continuing"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	case MoveLimitReached:
		return "move limit"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Outcome is the state of a game after a turn.
type Outcome struct {
	Kind OutcomeKind

	// Loser is the checkmated colour (Checkmate only).
	Loser chess.Colour

	// Reason explains a draw.
	Reason string

	// Plies is the number of half-moves applied so far.
	Plies int
}

// IsTerminal reports whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o.Kind != Continuing
}

// String returns a human readable description of the outcome.
func (o Outcome) String() string {
	switch o.Kind {
	case Checkmate:
		return fmt.Sprintf("%v checkmated after %d plies", o.Loser, o.Plies)
	case Draw:
		return fmt.Sprintf("draw (%s) after %d plies", o.Reason, o.Plies)
	}
	return fmt.Sprintf("%v after %d plies", o.Kind, o.Plies)
}

// Record describes one applied half-move.
type Record struct {
	GameID string
	Ply    int
	Colour chess.Colour
	Kind   chess.Kind
	From   chess.Square
	To     chess.Square
	Class  chess.MoveClass

	// Captured is meaningful when IsCapture is set.
	Captured  chess.Kind
	IsCapture bool

	// Resolved is set when the move answered a check.
	Resolved bool
}

// Game drives self-play on a board it owns.
type Game struct {
	id       string
	board    *chess.Board
	toMove   chess.Colour
	rng      *rand.Rand
	logger   *log.Logger
	observer func(Record)

	ply     int
	last    Record
	outcome Outcome
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithRand sets the random source used to shuffle candidates.
func WithRand(rng *rand.Rand) GameOption {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger sets the logger that receives warnings.
func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithObserver registers a function called with every applied half-move.
func WithObserver(fn func(Record)) GameOption {
	return func(g *Game) {
		g.observer = fn
	}
}

// WithToMove sets the side to move first. Default: White.
func WithToMove(colour chess.Colour) GameOption {
	return func(g *Game) {
		g.toMove = colour
	}
}

// WithID sets the game identifier. Default: a UUID drawn from the random source.
func WithID(id string) GameOption {
	return func(g *Game) {
		g.id = id
	}
}

// NewGame creates a game on the board. Both sides need a king.
func NewGame(board *chess.Board, opts ...GameOption) (*Game, error) {
	g := &Game{
		board:  board,
		toMove: chess.White,
		rng:    rand.New(rand.NewSource(1)),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := board.King(c); !ok {
			return nil, fmt.Errorf("%v: %w", c, errors.ErrMissingKing)
		}
	}
	if g.id == "" {
		id, err := uuid.NewRandomFromReader(g.rng)
		if err != nil {
			return nil, errors.Wrap(err, "game id")
		}
		g.id = id.String()
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Board returns the board, for display. Callers must not mutate it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// LastRecord returns the record of the latest half-move.
func (g *Game) LastRecord() Record {
	return g.last
}

// Play runs turns until the game ends, maxPlies half-moves have been
// applied (when positive), or cont returns false.
func (g *Game) Play(maxPlies int, cont func(Record) bool) Outcome {
	for {
		if g.outcome.IsTerminal() {
			return g.outcome
		}
		if maxPlies > 0 && g.ply >= maxPlies {
			return g.finish(Outcome{Kind: MoveLimitReached})
		}
		if out := g.Step(); out.IsTerminal() {
			return out
		}
		if cont != nil && !cont(g.last) {
			return g.finish(Outcome{Kind: Stopped})
		}
	}
}

// Step plays one half-move for the side to move.
func (g *Game) Step() Outcome {
	if g.outcome.IsTerminal() {
		return g.outcome
	}

	colour := g.toMove
	king, ok := g.board.King(colour)
	if !ok {
		return g.finish(Outcome{Kind: Checkmate, Loser: colour})
	}

	candidates := g.candidates(colour)
	checks := InCheck(g.board, king)

	var move chess.Move
	if len(checks) > 0 {
		if move, ok = ResolveCheck(g.board, king, candidates, checks); !ok {
			return g.finish(Outcome{Kind: Checkmate, Loser: colour})
		}
	} else if move, ok = g.choose(king, candidates); !ok {
		return g.finish(Outcome{Kind: Draw, Reason: DrawNoLegalMoves})
	}

	g.apply(move, len(checks) > 0)

	if HasInsufficientMaterial(g.board) {
		g.outcome = Outcome{Kind: Draw, Reason: DrawInsufficientMaterial}
	}
	g.board.ClearEnPassant(colour.Opposite())
	g.toMove = colour.Opposite()
	g.outcome.Plies = g.ply

	if g.observer != nil {
		g.observer(g.last)
	}
	return g.outcome
}

// candidates returns the pseudo-legal moves of a colour. Moves onto a
// king are never candidates.
func (g *Game) candidates(colour chess.Colour) []chess.Move {
	all := PseudoLegalMoves(g.board, colour)
	moves := all[:0]
	for _, m := range all {
		if occ, ok := g.board.Occupant(m.To); ok && occ.Kind == chess.King {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// choose scores and orders the candidates and returns the first that does
// not expose the king.
func (g *Game) choose(king chess.PieceID, candidates []chess.Move) (chess.Move, bool) {
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	attacked := AttackedSquares(g.board, king)
	for i := range candidates {
		if attacked.Has(candidates[i].To) {
			candidates[i].Value -= g.board.Piece(candidates[i].Piece).Kind.Value()
		}
	}
	chess.SortByValue(candidates)

	for _, m := range candidates {
		if m.Piece == king || !g.exposesKing(king, m) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// exposesKing lifts the moving piece off its square and reports whether
// the king is then in check. The board is restored on return.
func (g *Game) exposesKing(king chess.PieceID, m chess.Move) bool {
	restore := g.board.Vacate(g.board.Piece(m.Piece).Loc)
	defer restore()
	return len(InCheck(g.board, king)) > 0
}

// apply applies the move and records it.
func (g *Game) apply(move chess.Move, resolved bool) {
	p := g.board.Piece(move.Piece)
	rec := Record{
		GameID:   g.id,
		Ply:      g.ply + 1,
		Colour:   p.Colour,
		Kind:     p.Kind,
		From:     p.Loc,
		To:       move.To,
		Resolved: resolved,
	}
	if occ, ok := g.board.Occupant(move.To); ok {
		rec.Captured, rec.IsCapture = occ.Kind, true
	} else if move.EnPassantCapture {
		rec.Captured, rec.IsCapture = chess.Pawn, true
	}

	class, err := ApplyMove(g.board, move)
	if err != nil {
		werr := &errors.GameError{Err: err, GameID: g.id, PlyNum: rec.Ply, Square: move.To.String()}
		g.logger.Printf("warning: %v", werr)
		if move.EnPassantCapture {
			rec.IsCapture = false
		}
	}
	rec.Class = class

	g.ply++
	g.last = rec
}

// finish records a terminal outcome.
func (g *Game) finish(o Outcome) Outcome {
	o.Plies = g.ply
	g.outcome = o
	return o
}
