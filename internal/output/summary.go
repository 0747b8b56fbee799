package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/engine"
	"github.com/lgbarn/selfplay-chess-go/internal/worker"
)

// Summary tallies the outcomes of a run.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      map[string]int // by reason
	MoveLimit  int
	Stopped    int
	Errors     int
	TotalPlies int
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{Draws: make(map[string]int)}
}

// Add counts one finished game.
func (s *Summary) Add(res worker.ProcessResult) {
	s.Games++
	if res.Error != nil {
		s.Errors++
		return
	}
	s.TotalPlies += res.Outcome.Plies

	switch res.Outcome.Kind {
	case engine.Checkmate:
		if res.Outcome.Loser == chess.Black {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	case engine.Draw:
		s.Draws[res.Outcome.Reason]++
	case engine.MoveLimitReached:
		s.MoveLimit++
	case engine.Stopped:
		s.Stopped++
	}
}

// TotalDraws returns the number of drawn games.
func (s *Summary) TotalDraws() int {
	n := 0
	for _, c := range s.Draws {
		n += c
	}
	return n
}

// AveragePlies returns the mean game length of the games without errors.
func (s *Summary) AveragePlies() float64 {
	played := s.Games - s.Errors
	if played == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(played)
}

// drawReasons returns the draw reasons in sorted order.
func (s *Summary) drawReasons() []string {
	reasons := make([]string, 0, len(s.Draws))
	for r := range s.Draws {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}

// WriteText writes the summary as aligned text lines.
func (s *Summary) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "games:         %d\n", s.Games)
	fmt.Fprintf(&sb, "white wins:    %d\n", s.WhiteWins)
	fmt.Fprintf(&sb, "black wins:    %d\n", s.BlackWins)
	fmt.Fprintf(&sb, "draws:         %d", s.TotalDraws())
	if reasons := s.drawReasons(); len(reasons) > 0 {
		parts := make([]string, len(reasons))
		for i, r := range reasons {
			parts[i] = fmt.Sprintf("%s %d", r, s.Draws[r])
		}
		fmt.Fprintf(&sb, " (%s)", strings.Join(parts, ", "))
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "move limit:    %d\n", s.MoveLimit)
	if s.Stopped > 0 {
		fmt.Fprintf(&sb, "stopped:       %d\n", s.Stopped)
	}
	if s.Errors > 0 {
		fmt.Fprintf(&sb, "errors:        %d\n", s.Errors)
	}
	fmt.Fprintf(&sb, "average plies: %.1f\n", s.AveragePlies())

	_, err := io.WriteString(w, sb.String())
	return err
}
