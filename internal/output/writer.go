// Package output writes self-play games and run summaries as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/selfplay-chess-go/internal/config"
	"github.com/lgbarn/selfplay-chess-go/internal/engine"
	"github.com/lgbarn/selfplay-chess-go/internal/worker"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a finished game and any half-moves recorded for it.
	WriteGame(res worker.ProcessResult) error

	// WriteSummary writes the totals of the run.
	WriteSummary(s *Summary) error

	// Close writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes games as lines of text.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes one line per recorded half-move, then the outcome line.
func (tw *TextWriter) WriteGame(res worker.ProcessResult) error {
	for _, rec := range res.Records {
		if _, err := fmt.Fprintln(tw.w, FormatRecord(rec)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w, FormatGame(res))
	return err
}

// WriteSummary writes the summary block.
func (tw *TextWriter) WriteSummary(s *Summary) error {
	return s.WriteText(tw.w)
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}

// FormatRecord renders a half-move, e.g. "12 White Knight g1-f3 piece x Pawn".
func FormatRecord(rec engine.Record) string {
	s := fmt.Sprintf("%d %v %v %v-%v %v", rec.Ply, rec.Colour, rec.Kind, rec.From, rec.To, rec.Class)
	if rec.IsCapture {
		s += fmt.Sprintf(" x %v", rec.Captured)
	}
	if rec.Resolved {
		s += " (check)"
	}
	return s
}

// FormatGame renders the outcome line of a game.
func FormatGame(res worker.ProcessResult) string {
	if res.Error != nil {
		return fmt.Sprintf("game %d %s: error: %v", res.Index+1, res.GameID, res.Error)
	}
	return fmt.Sprintf("game %d %s: %v", res.Index+1, res.GameID, res.Outcome)
}

// JSONWriter writes the run as a single JSON document.
// It buffers games and writes them with the summary on Close.
type JSONWriter struct {
	w       io.Writer
	games   []*JSONGame
	summary *JSONSummary
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(res worker.ProcessResult) error {
	jw.games = append(jw.games, GameToJSON(res))
	return nil
}

// WriteSummary buffers the summary for JSON output.
func (jw *JSONWriter) WriteSummary(s *Summary) error {
	jw.summary = SummaryToJSON(s)
	return nil
}

// Close writes the buffered games and summary.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games, Summary: jw.summary})

	jw.games = jw.games[:0]
	jw.summary = nil
	return err
}
