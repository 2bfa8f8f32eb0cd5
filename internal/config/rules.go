package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RulesConfig holds settings for how games are played out.
type RulesConfig struct {
	// StartFEN is the starting position; empty means the standard one.
	StartFEN string

	// DrawRules enables the optional draw rules. Off by default.
	DrawRules engine.DrawRules

	// MaxPly stops a game after this many half-moves (0 = no limit).
	MaxPly int
}

// NewRulesConfig creates a RulesConfig with default values.
// All draw rules are disabled and games are unlimited.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// Validate checks the ply limit and that the starting position parses.
func (r *RulesConfig) Validate() error {
	if r.MaxPly < 0 {
		return fmt.Errorf("max ply (%d) < 0: %w", r.MaxPly, errors.ErrInvalidConfig)
	}
	if r.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(r.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// StartPosition returns the FEN of the starting position.
func (r *RulesConfig) StartPosition() string {
	if r.StartFEN == "" {
		return engine.InitialFEN
	}
	return r.StartFEN
}
