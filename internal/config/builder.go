package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

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

// WithPlayers sets the policy names for both sides.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithSeed sets the seed for randomised policies.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Players.Seed = seed
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Rules.StartFEN = fen
	return b
}

// WithDrawRules sets which optional draw rules apply.
func (b *ConfigBuilder) WithDrawRules(rules engine.DrawRules) *ConfigBuilder {
	b.cfg.Rules.DrawRules = rules
	return b
}

// WithMaxPly sets the ply limit per game.
func (b *ConfigBuilder) WithMaxPly(n int) *ConfigBuilder {
	b.cfg.Rules.MaxPly = n
	return b
}

// WithGames sets the number of games in a batch.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Run.Games = n
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Run.Workers = n
	return b
}

// WithPerft switches to a perft run at depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Run.PerftDepth = depth
	b.cfg.Run.Divide = divide
	return b
}

// WithDuplicateDetection enables duplicate game detection.
func (b *ConfigBuilder) WithDuplicateDetection(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
