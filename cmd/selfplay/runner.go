package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/config"
	"github.com/lgbarn/selfplay-chess-go/internal/engine"
	"github.com/lgbarn/selfplay-chess-go/internal/output"
	"github.com/lgbarn/selfplay-chess-go/internal/worker"
)

// Runner plays a batch of games on a worker pool and writes the results.
type Runner struct {
	cfg    *config.Config
	logger *log.Logger
	pool   *worker.Pool
}

// newRunner creates a runner for the configuration. Warnings go to
// cfg.LogFile.
func newRunner(cfg *config.Config) *Runner {
	r := &Runner{
		cfg:    cfg,
		logger: log.New(cfg.LogFile, "selfplay: ", log.LstdFlags),
	}
	r.pool = worker.NewPool(r.playGame,
		worker.WithWorkers(cfg.Play.Workers),
		worker.WithBufferSize(2*cfg.Play.Workers),
	)
	return r
}

// Stop skips the games not yet started and ends running games after their
// current half-move.
func (r *Runner) Stop() {
	r.pool.Stop()
}

// Run plays every configured game, writes them in game order and returns
// the summary. Failed games are counted, not returned as errors.
func (r *Runner) Run() (*output.Summary, error) {
	results := r.pool.Run(worker.Jobs(r.cfg.Play.Games, r.cfg.Play.Seed))

	writer := output.NewGameWriter(r.cfg.OutputFile, r.cfg)
	summary := output.NewSummary()
	for _, res := range results {
		summary.Add(res)
		if res.Error != nil {
			r.logger.Printf("game %d: %v", res.Index+1, res.Error)
		}
		if r.cfg.Output.Verbosity >= 1 {
			if err := writer.WriteGame(res); err != nil {
				return summary, fmt.Errorf("writing game %d: %w", res.Index+1, err)
			}
		}
	}

	if err := writer.WriteSummary(summary); err != nil {
		return summary, fmt.Errorf("writing summary: %w", err)
	}
	return summary, writer.Close()
}

// playGame plays one game from a fresh starting position. The item's seed
// drives both the setup and the game.
func (r *Runner) playGame(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index}

	rng := rand.New(rand.NewSource(item.Seed))
	board, err := chess.NewBoardFromSetup(r.cfg.Setup.Options(), rng)
	if err != nil {
		result.Error = err
		return result
	}

	opts := []engine.GameOption{
		engine.WithRand(rng),
		engine.WithLogger(r.logger),
	}
	if r.cfg.Output.Verbosity >= 2 {
		opts = append(opts, engine.WithObserver(func(rec engine.Record) {
			result.Records = append(result.Records, rec)
		}))
	}

	game, err := engine.NewGame(board, opts...)
	if err != nil {
		result.Error = err
		return result
	}
	result.GameID = game.ID()
	result.Outcome = game.Play(r.cfg.Play.MaxPlies, func(engine.Record) bool {
		return !r.pool.IsStopped()
	})
	return result
}
