// Package config provides configuration for chess-rules.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=per-game summary, 2=running commentary

	// Who plays
	Players PlayerConfig

	// Starting position, draw rules and ply limit
	Rules RulesConfig

	// Batch and perft settings
	Run RunConfig

	// Duplicate game detection across a batch
	Duplicate DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Players:    *NewPlayerConfig(),
		Rules:      *NewRulesConfig(),
		Run:        *NewRunConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration and returns the first
// problem found, wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Players.Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Run.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

// Interactive reports whether either side is played by a human.
func (c *Config) Interactive() bool {
	return c.Players.HasHuman()
}
