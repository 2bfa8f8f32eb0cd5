package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/player"
)

// PlayerConfig names the policy playing each side.
type PlayerConfig struct {
	White string
	Black string

	// Seed for randomised policies. Each game of a batch derives its own
	// seed from it.
	Seed int64
}

// NewPlayerConfig creates a PlayerConfig with default values: random
// engines on both sides.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		White: player.RandomName,
		Black: player.RandomName,
		Seed:  1,
	}
}

// Validate checks that both sides name a known policy.
func (p *PlayerConfig) Validate() error {
	for _, name := range []string{p.White, p.Black} {
		if !player.IsKnown(name) {
			return fmt.Errorf("unknown player %q (want one of %v): %w",
				name, player.Names(), errors.ErrInvalidConfig)
		}
	}
	return nil
}

// HasHuman reports whether either side is a human.
func (p *PlayerConfig) HasHuman() bool {
	return p.White == player.HumanName || p.Black == player.HumanName
}
