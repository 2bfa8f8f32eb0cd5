package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection in a batch.
type DuplicateConfig struct {
	// Detect enables duplicate detection
	Detect bool

	// ExactMatch also requires the same move sequence, not just the same
	// final position
	ExactMatch bool

	// MaxCapacity bounds the number of remembered games (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Detect:      false,
		ExactMatch:  true,
		MaxCapacity: 0,
	}
}

// Validate checks the capacity.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) < 0: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
