package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board size.
func (b *ConfigBuilder) WithBoardSize(size int) *ConfigBuilder {
	b.cfg.Setup.BoardSize = size
	return b
}

// WithShuffle enables the shuffled back rank.
func (b *ConfigBuilder) WithShuffle(enabled bool) *ConfigBuilder {
	b.cfg.Setup.Shuffle = enabled
	return b
}

// WithPawnProbability sets the chance of each pawn being placed.
func (b *ConfigBuilder) WithPawnProbability(p float64) *ConfigBuilder {
	b.cfg.Setup.PawnProbability = p
	return b
}

// WithGames sets the number of games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Play.Games = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Play.Workers = n
	return b
}

// WithMaxPlies sets the half-move limit per game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithSeed sets the base seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Output.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
