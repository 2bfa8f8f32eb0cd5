package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RunConfig holds settings for batches of self-play games and perft runs.
type RunConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played in parallel
	Workers int

	// BufferSize is the capacity of the worker pool channels
	BufferSize int

	// PerftDepth runs a perft count to this depth instead of playing (0 = off)
	PerftDepth int

	// Divide breaks the perft count down by root move
	Divide bool
}

// NewRunConfig creates a RunConfig with default values.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		Games:      1,
		Workers:    runtime.NumCPU(),
		BufferSize: 16,
	}
}

// Validate checks that the run settings are usable.
func (r *RunConfig) Validate() error {
	if r.Games < 1 {
		return fmt.Errorf("games (%d) < 1: %w", r.Games, errors.ErrInvalidConfig)
	}
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.PerftDepth < 0 {
		return fmt.Errorf("perft depth (%d) < 0: %w", r.PerftDepth, errors.ErrInvalidConfig)
	}
	if r.Divide && r.PerftDepth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
