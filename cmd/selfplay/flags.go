// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/selfplay-chess-go/internal/chess"
	"github.com/lgbarn/selfplay-chess-go/internal/config"
)

var (
	// Run options
	numGames = flag.Int("n", 1, "Number of games to play")
	workers  = flag.Int("workers", 0, "Number of games played in parallel (0 = number of CPUs)")
	maxPlies = flag.Int("maxply", 500, "Stop a game after N half-moves (0 = no limit)")
	seed     = flag.Int64("seed", 1, "Base random seed; game i uses seed+i")

	// Setup options
	boardSize = flag.Int("size", chess.BoardSize, "Board size")
	shuffle   = flag.Bool("shuffle", false, "Shuffle the back rank, mirrored for both colours")
	pawnProb  = flag.Float64("pawns", 1, "Probability of placing each pawn")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "text", "Output format: text, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	verbosity    = flag.Int("v", 1, "Verbosity: 0 summary only, 1 one line per game, 2 every half-move")
	quiet        = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile      = flag.String("l", "", "Write warnings to this file (default: stderr)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySetupFlags(cfg)
	applyPlayFlags(cfg)
	return applyOutputFlags(cfg)
}

// applySetupFlags configures the starting position.
func applySetupFlags(cfg *config.Config) {
	cfg.Setup.BoardSize = *boardSize
	cfg.Setup.Shuffle = *shuffle
	cfg.Setup.PawnProbability = *pawnProb
}

// applyPlayFlags configures the run. Workers keeps its default when unset.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.Games = *numGames
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.Seed = *seed
	if *workers != 0 {
		cfg.Play.Workers = *workers
	}
}

// applyOutputFlags configures the output format and detail.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSON
	}
	cfg.Output.Format = format
	cfg.Output.Filename = *outputFile

	cfg.Output.Verbosity = *verbosity
	if *quiet {
		cfg.Output.Verbosity = 0
	}
	return nil
}
