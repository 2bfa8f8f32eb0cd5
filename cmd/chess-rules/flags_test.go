package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestParseDrawRules(t *testing.T) {
	tests := []struct {
		input   string
		want    engine.DrawRules
		wantErr bool
	}{
		{"", engine.DrawRules{}, false},
		{"none", engine.DrawRules{}, false},
		{"all", engine.AllDrawRules, false},
		{"material", engine.DrawRules{InsufficientMaterial: true}, false},
		{"fifty,repetition", engine.DrawRules{FiftyMove: true, Repetition: true}, false},
		{"Material, 50", engine.DrawRules{InsufficientMaterial: true, FiftyMove: true}, false},
		{"threefold", engine.DrawRules{Repetition: true}, false},
		{"agreement", engine.DrawRules{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDrawRules(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDrawRules(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("parseDrawRules(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyPlayerFlags(t *testing.T) {
	defer saveRestoreString(whiteName, "Human")()
	defer saveRestoreString(blackName, "capture")()

	cfg := config.NewConfig()
	applyPlayerFlags(cfg)

	if cfg.Players.White != "human" || cfg.Players.Black != "capture" {
		t.Errorf("players = %q vs %q; want human vs capture", cfg.Players.White, cfg.Players.Black)
	}
	if !cfg.Interactive() {
		t.Error("Interactive() = false; want true")
	}
}

func TestApplyRulesFlags(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
		defer saveRestoreInt(maxPly, 80)()
		defer saveRestoreString(drawRules, "all")()

		cfg := config.NewConfig()
		if err := applyRulesFlags(cfg); err != nil {
			t.Fatalf("applyRulesFlags() error = %v", err)
		}
		if cfg.Rules.MaxPly != 80 {
			t.Errorf("MaxPly = %d; want 80", cfg.Rules.MaxPly)
		}
		if cfg.Rules.DrawRules != engine.AllDrawRules {
			t.Errorf("DrawRules = %+v; want all", cfg.Rules.DrawRules)
		}
		if cfg.Rules.StartPosition() != *startFEN {
			t.Errorf("StartPosition() = %q", cfg.Rules.StartPosition())
		}
	})

	t.Run("bad draw rule", func(t *testing.T) {
		defer saveRestoreString(drawRules, "mutual")()

		if err := applyRulesFlags(config.NewConfig()); err == nil {
			t.Error("applyRulesFlags() error = nil; want error")
		}
	})
}

func TestApplyRunFlags(t *testing.T) {
	defer saveRestoreInt(numGames, 12)()
	defer saveRestoreInt(numWorkers, 3)()
	defer saveRestoreInt(perftDepth, 4)()
	defer saveRestoreBool(divide, true)()

	cfg := config.NewConfig()
	applyRunFlags(cfg)

	if cfg.Run.Games != 12 || cfg.Run.Workers != 3 {
		t.Errorf("Games/Workers = %d/%d; want 12/3", cfg.Run.Games, cfg.Run.Workers)
	}
	if cfg.Run.PerftDepth != 4 || !cfg.Run.Divide {
		t.Errorf("perft = %d divide=%v; want 4 true", cfg.Run.PerftDepth, cfg.Run.Divide)
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(detectDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)

	if !cfg.Duplicate.Detect || cfg.Duplicate.MaxCapacity != 500 {
		t.Errorf("Duplicate = %+v; want detect with capacity 500", cfg.Duplicate)
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default flags do not validate: %v", err)
	}
	if cfg.Rules.DrawRules.Any() {
		t.Error("draw rules enabled by default")
	}
}
