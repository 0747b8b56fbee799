package engine

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/errors"
	"github.com/lgbarn/selfplay-chess-go/internal/testutil"
)

func seeded(seed int64) GameOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func TestNewGame_MissingKing(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"no white king", "4k3/8/8/8/8/8/8/8"},
		{"no black king", "8/8/8/8/8/8/8/4K3"},
		{"empty board", "3/3/3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGame(testutil.MustBoard(t, tt.layout))
			testutil.AssertErrorIs(t, err, errors.ErrMissingKing, "NewGame")
		})
	}
}

func TestNewGame_ID(t *testing.T) {
	b := chess.NewStandardBoard()

	g, err := NewGame(b, WithID("fixed"))
	testutil.AssertNoError(t, err, "NewGame")
	testutil.AssertEqual(t, g.ID(), "fixed", "explicit id")

	g1, err := NewGame(b.Copy(), seeded(9))
	testutil.AssertNoError(t, err, "NewGame")
	g2, err := NewGame(b.Copy(), seeded(9))
	testutil.AssertNoError(t, err, "NewGame")
	if g1.ID() != g2.ID() {
		t.Errorf("same seed gave ids %q and %q", g1.ID(), g2.ID())
	}
	if _, err := uuid.Parse(g1.ID()); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", g1.ID(), err)
	}
}

func TestGame_InsufficientMaterialAfterMove(t *testing.T) {
	b := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/2B1K3")
	g, err := NewGame(b, seeded(1))
	testutil.AssertNoError(t, err, "NewGame")

	out := g.Step()
	want := Outcome{Kind: Draw, Reason: DrawInsufficientMaterial, Plies: 1}
	testutil.AssertEqual(t, out, want, "Step()")

	if again := g.Step(); again != out {
		t.Errorf("Step() after the end = %v; want %v", again, out)
	}
}

func TestGame_LoneKingsDraw(t *testing.T) {
	b := testutil.MustBoard(t, "5/3k1/5/1K3/5")
	g, err := NewGame(b, seeded(3))
	testutil.AssertNoError(t, err, "NewGame")

	out := g.Play(0, nil)
	if out.Kind != Draw || out.Reason != DrawInsufficientMaterial {
		t.Errorf("Play() = %v; want insufficient material draw", out)
	}
	rec := g.LastRecord()
	if rec.Kind != chess.King {
		t.Errorf("last record moved %v; want King", rec.Kind)
	}
	enemy, _ := b.King(chess.Black)
	if rec.To.IsAdjacent(b.Piece(enemy).Loc) {
		t.Errorf("king moved to %v next to the enemy king", rec.To)
	}
}

func TestGame_Checkmate(t *testing.T) {
	b := testutil.MustBoard(t, "R5k1/5ppp/8/8/8/8/8/6K1")
	g, err := NewGame(b, WithToMove(chess.Black))
	testutil.AssertNoError(t, err, "NewGame")

	out := g.Step()
	want := Outcome{Kind: Checkmate, Loser: chess.Black}
	testutil.AssertEqual(t, out, want, "Step()")
	if b.Count(chess.Black) != 4 {
		t.Errorf("board changed on checkmate: Count(Black) = %d", b.Count(chess.Black))
	}
}

func TestGame_NoLegalMoves(t *testing.T) {
	b := testutil.MustBoard(t, "k7/8/1Q6/8/8/8/8/2K5")
	g, err := NewGame(b, WithToMove(chess.Black))
	testutil.AssertNoError(t, err, "NewGame")

	out := g.Step()
	want := Outcome{Kind: Draw, Reason: DrawNoLegalMoves}
	testutil.AssertEqual(t, out, want, "Step()")
}

func TestGame_ResolvesCheck(t *testing.T) {
	b := testutil.MustBoard(t, "4k3/7p/8/4r3/8/2B5/8/4K3")
	var records []Record
	g, err := NewGame(b, seeded(5), WithID("g"), WithObserver(func(r Record) {
		records = append(records, r)
	}))
	testutil.AssertNoError(t, err, "NewGame")

	out := g.Step()
	if out.Kind != Continuing {
		t.Fatalf("Step() = %v; want continuing", out)
	}
	if len(records) != 1 {
		t.Fatalf("observer saw %d records; want 1", len(records))
	}
	want := Record{
		GameID:    "g",
		Ply:       1,
		Colour:    chess.White,
		Kind:      chess.Bishop,
		From:      testutil.MustSquare(t, "c3"),
		To:        testutil.MustSquare(t, "e5"),
		Class:     chess.PieceMove,
		Captured:  chess.Rook,
		IsCapture: true,
		Resolved:  true,
	}
	testutil.AssertEqual(t, records[0], want, "record")
	if g.ToMove() != chess.Black {
		t.Errorf("ToMove() = %v; want Black", g.ToMove())
	}
}

func TestGame_PrefersCaptures(t *testing.T) {
	b := testutil.MustBoard(t, "k7/8/8/R7/8/8/7K/q7")
	g, err := NewGame(b, seeded(11))
	testutil.AssertNoError(t, err, "NewGame")

	g.Step()
	rec := g.LastRecord()
	if !rec.IsCapture || rec.Captured != chess.Queen {
		t.Errorf("first move %v-%v captured %v (%v); want the queen", rec.From, rec.To, rec.Captured, rec.IsCapture)
	}
}

func TestGame_AvoidsDefendedSquares(t *testing.T) {
	// Taking the pawn on d5 loses the queen to the pawn on e6, so a quiet
	// queen move scores higher.
	b := testutil.MustBoard(t, "k7/8/4p3/3p4/8/8/8/3Q2K1")
	g, err := NewGame(b, seeded(2))
	testutil.AssertNoError(t, err, "NewGame")

	g.Step()
	if rec := g.LastRecord(); rec.IsCapture {
		t.Errorf("first move %v-%v captured a defended pawn", rec.From, rec.To)
	}
}

func TestGame_PinnedPieceStays(t *testing.T) {
	// The knight shields its king from the rook, the king is boxed in by
	// its own pawns.
	for seed := int64(0); seed < 20; seed++ {
		g := mustGame(t, testutil.MustBoard(t, "k3r3/8/8/8/8/8/3PNP2/3PKP2"), seeded(seed))
		g.Step()
		if rec := g.LastRecord(); rec.Kind == chess.Knight {
			t.Fatalf("seed %d: pinned knight moved to %v", seed, rec.To)
		}
	}
}

func mustGame(t *testing.T, b *chess.Board, opts ...GameOption) *Game {
	t.Helper()
	g, err := NewGame(b, opts...)
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g
}

func TestGame_Play(t *testing.T) {
	t.Run("move limit", func(t *testing.T) {
		g := mustGame(t, chess.NewStandardBoard(), seeded(1))
		out := g.Play(4, nil)
		testutil.AssertEqual(t, out, Outcome{Kind: MoveLimitReached, Plies: 4}, "Play()")
	})

	t.Run("stopped by callback", func(t *testing.T) {
		g := mustGame(t, chess.NewStandardBoard(), seeded(1))
		out := g.Play(0, func(r Record) bool { return r.Ply < 3 })
		testutil.AssertEqual(t, out, Outcome{Kind: Stopped, Plies: 3}, "Play()")
	})

	t.Run("terminal outcome is sticky", func(t *testing.T) {
		g := mustGame(t, testutil.MustBoard(t, "4k3/8/8/8/8/8/8/2B1K3"), seeded(1))
		first := g.Play(10, nil)
		if first.Kind != Draw {
			t.Fatalf("Play() = %v; want draw", first)
		}
		testutil.AssertEqual(t, g.Play(10, nil), first, "second Play()")
		testutil.AssertEqual(t, g.Outcome(), first, "Outcome()")
	})
}

// TestGame_Invariants plays whole games and checks the board after every
// half-move.
func TestGame_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		b := chess.NewStandardBoard()
		prev := Record{}
		g := mustGame(t, b, seeded(seed), WithObserver(func(r Record) {
			if r.Ply != prev.Ply+1 {
				t.Errorf("seed %d: ply %d follows %d", seed, r.Ply, prev.Ply)
			}
			if r.Colour == prev.Colour && prev.Ply > 0 {
				t.Errorf("seed %d: %v moved twice in a row", seed, r.Colour)
			}
			if r.IsCapture && r.Captured == chess.King {
				t.Errorf("seed %d ply %d: king captured", seed, r.Ply)
			}
			for _, c := range []chess.Colour{chess.White, chess.Black} {
				if _, ok := b.King(c); !ok {
					t.Errorf("seed %d ply %d: %v king missing", seed, r.Ply, c)
				}
			}
			// Only the side that just moved may hold en passant rights.
			for _, id := range b.Pieces(r.Colour.Opposite()) {
				if b.Piece(id).EnPassant {
					t.Errorf("seed %d ply %d: stale en passant flag on %v", seed, r.Ply, b.Piece(id).Loc)
				}
			}
			if r.Class == chess.PawnDoubleStep && !b.Piece(b.At(r.To)).EnPassant {
				t.Errorf("seed %d ply %d: double step to %v not en passant eligible", seed, r.Ply, r.To)
			}
			prev = r
		}))

		out := g.Play(300, nil)
		if out.Plies != prev.Ply {
			t.Errorf("seed %d: outcome plies %d, last record %d", seed, out.Plies, prev.Ply)
		}
		if !out.IsTerminal() {
			t.Errorf("seed %d: Play() returned non-terminal %v", seed, out)
		}
	}
}

func TestGame_Reproducible(t *testing.T) {
	play := func(seed int64) ([]Record, Outcome) {
		var records []Record
		g := mustGame(t, chess.NewStandardBoard(), seeded(seed), WithObserver(func(r Record) {
			records = append(records, r)
		}))
		return records, g.Play(200, nil)
	}

	r1, o1 := play(42)
	r2, o2 := play(42)
	testutil.AssertEqual(t, r2, r1, "records")
	testutil.AssertEqual(t, o2, o1, "outcome")

	r3, _ := play(43)
	if len(r3) > 0 && len(r1) > 0 && r3[0].GameID == r1[0].GameID {
		t.Error("different seeds gave the same game id")
	}
}

func TestGame_LogsEnPassantWarning(t *testing.T) {
	var buf bytes.Buffer
	b := testutil.MustBoard(t, "4k3/8/8/4P3/8/8/8/4K3")
	g := mustGame(t, b, WithLogger(log.New(&buf, "", 0)), WithID("warn"))

	pawn := testutil.MustPieceAt(t, b, "e5")
	g.apply(chess.Move{Piece: pawn, To: testutil.MustSquare(t, "d6"), EnPassantCapture: true}, false)

	testutil.AssertContains(t, buf.String(), "game warn", "log")
	testutil.AssertContains(t, buf.String(), "no en passant target", "log")
	if rec := g.LastRecord(); rec.IsCapture {
		t.Error("failed en passant recorded as a capture")
	}
}
