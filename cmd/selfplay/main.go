// selfplay plays randomized games of chess against itself and reports the outcomes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/selfplay-chess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("selfplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	runner := newRunner(cfg)
	stopOnInterrupt(runner)

	_, err := runner.Run()
	closeFile(cfg.OutputFile)
	closeFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.Output.Filename == "" {
		return
	}

	file, err := os.Create(cfg.Output.Filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.Output.Filename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// stopOnInterrupt stops the runner on the first SIGINT. A second one
// kills the process.
func stopOnInterrupt(runner *Runner) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		fmt.Fprintln(os.Stderr, "Interrupted, finishing current games...")
		runner.Stop()
		signal.Stop(sigs)
	}()
}

// closeFile closes w when it is a file other than stdout or stderr.
func closeFile(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return
	}
	f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: selfplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays randomized games of chess against itself.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   One line per game, then a summary (default)\n")
	fmt.Fprintf(os.Stderr, "  json   A single JSON document with every game and the summary\n")
}
