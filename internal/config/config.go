// Package config provides configuration for self-play runs.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Setup  *SetupConfig
	Play   *PlayConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Setup:      NewSetupConfig(),
		Play:       NewPlayConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer receiving records and summaries.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer receiving warnings.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Setup.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
