package output

import (
	"strings"

	"github.com/lgbarn/selfplay-chess-go/internal/engine"
	"github.com/lgbarn/selfplay-chess-go/internal/worker"
)

// JSONGame represents a finished game in JSON format.
type JSONGame struct {
	Index  int        `json:"index"`
	ID     string     `json:"id"`
	Result string     `json:"result"`
	Winner string     `json:"winner,omitempty"`
	Reason string     `json:"reason,omitempty"`
	Plies  int        `json:"plies"`
	Error  string     `json:"error,omitempty"`
	Moves  []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a half-move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"` // "white" or "black"
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	Class    string `json:"class"`
	Captured string `json:"captured,omitempty"`
	InCheck  bool   `json:"inCheck,omitempty"` // the move answered a check
}

// JSONSummary represents the run summary in JSON format.
type JSONSummary struct {
	Games        int            `json:"games"`
	WhiteWins    int            `json:"whiteWins"`
	BlackWins    int            `json:"blackWins"`
	Draws        map[string]int `json:"draws"`
	MoveLimit    int            `json:"moveLimit"`
	Stopped      int            `json:"stopped,omitempty"`
	Errors       int            `json:"errors,omitempty"`
	AveragePlies float64        `json:"averagePlies"`
}

// JSONOutput holds a whole run.
type JSONOutput struct {
	Games   []*JSONGame  `json:"games"`
	Summary *JSONSummary `json:"summary,omitempty"`
}

// GameToJSON converts a finished game to JSON format.
func GameToJSON(res worker.ProcessResult) *JSONGame {
	jg := &JSONGame{
		Index:  res.Index,
		ID:     res.GameID,
		Result: res.Outcome.Kind.String(),
		Reason: res.Outcome.Reason,
		Plies:  res.Outcome.Plies,
	}
	if res.Error != nil {
		jg.Result = "error"
		jg.Error = res.Error.Error()
	}
	if res.Outcome.Kind == engine.Checkmate {
		jg.Winner = colorName(res.Outcome.Loser.Opposite().String())
	}
	for _, rec := range res.Records {
		jg.Moves = append(jg.Moves, RecordToJSON(rec))
	}
	return jg
}

// RecordToJSON converts a half-move record to JSON format.
func RecordToJSON(rec engine.Record) JSONMove {
	jm := JSONMove{
		Ply:     rec.Ply,
		Color:   colorName(rec.Colour.String()),
		Piece:   pieceTypeName(rec.Kind.String()),
		From:    rec.From.String(),
		To:      rec.To.String(),
		Class:   rec.Class.String(),
		InCheck: rec.Resolved,
	}
	if rec.IsCapture {
		jm.Captured = pieceTypeName(rec.Captured.String())
	}
	return jm
}

// SummaryToJSON converts a summary to JSON format.
func SummaryToJSON(s *Summary) *JSONSummary {
	return &JSONSummary{
		Games:        s.Games,
		WhiteWins:    s.WhiteWins,
		BlackWins:    s.BlackWins,
		Draws:        s.Draws,
		MoveLimit:    s.MoveLimit,
		Stopped:      s.Stopped,
		Errors:       s.Errors,
		AveragePlies: s.AveragePlies(),
	}
}

// colorName returns "white" or "black".
func colorName(colour string) string {
	return strings.ToLower(colour)
}

// pieceTypeName returns the piece type as a lower-case string.
func pieceTypeName(kind string) string {
	return strings.ToLower(kind)
}
