package config

import (
	"fmt"

	"github.com/lgbarn/selfplay-chess-go/internal/errors"
)

// OutputFormat selects how records and summaries are written.
type OutputFormat int

const (
	Text OutputFormat = iota // one line per record
	JSON                     // one JSON document per run
)

// String returns the flag value of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat parses a format name as given on the command line.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output.
type OutputConfig struct {
	// Format of records and summaries
	Format OutputFormat

	// Filename receives the output instead of stdout when set
	Filename string

	// Verbosity: 0 = summary only, 1 = one line per game, 2 = every half-move
	Verbosity int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		Verbosity: 1,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Verbosity < 0 || o.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", o.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}
