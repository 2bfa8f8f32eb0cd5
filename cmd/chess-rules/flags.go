// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Position and players
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard initial position)")
	whiteName = flag.String("white", "random", "White player: human, random, first, capture")
	blackName = flag.String("black", "random", "Black player: human, random, first, capture")
	seed      = flag.Int64("seed", 1, "Seed for randomised players")

	// Game rules
	maxPly    = flag.Int("maxply", 0, "Stop each game after N plies (0 = no limit)")
	drawRules = flag.String("drawrules", "", "Draw rules to apply, comma-separated: material, fifty, repetition, all")

	// Batch play
	numGames          = flag.Int("games", 1, "Number of self-play games")
	numWorkers        = flag.Int("workers", runtime.NumCPU(), "Number of games played in parallel")
	detectDuplicates  = flag.Bool("D", false, "Count duplicate games in a batch")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum remembered games for -D (0 = unlimited)")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N instead of playing")
	divide     = flag.Bool("divide", false, "Break the perft count down by root move")

	// Diagnostics
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 per-game summary, 2 every move")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	version   = flag.Bool("version", false, "Print version and exit")
	help      = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed command line into cfg.
func applyFlags(cfg *config.Config) error {
	applyPlayerFlags(cfg)
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	applyRunFlags(cfg)
	applyDuplicateFlags(cfg)
	cfg.Verbosity = *verbosity
	return nil
}

// applyPlayerFlags configures who plays each side.
func applyPlayerFlags(cfg *config.Config) {
	cfg.Players.White = strings.ToLower(*whiteName)
	cfg.Players.Black = strings.ToLower(*blackName)
	cfg.Players.Seed = *seed
}

// applyRulesFlags configures the start position, ply limit and draw rules.
func applyRulesFlags(cfg *config.Config) error {
	cfg.Rules.StartFEN = *startFEN
	cfg.Rules.MaxPly = *maxPly

	rules, err := parseDrawRules(*drawRules)
	if err != nil {
		return err
	}
	cfg.Rules.DrawRules = rules
	return nil
}

// applyRunFlags configures batch and perft settings.
func applyRunFlags(cfg *config.Config) {
	cfg.Run.Games = *numGames
	cfg.Run.Workers = *numWorkers
	cfg.Run.PerftDepth = *perftDepth
	cfg.Run.Divide = *divide
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *detectDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// parseDrawRules parses a comma-separated list of draw rule names.
func parseDrawRules(s string) (engine.DrawRules, error) {
	var rules engine.DrawRules
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "":
		case "material":
			rules.InsufficientMaterial = true
		case "fifty", "50":
			rules.FiftyMove = true
		case "repetition", "threefold":
			rules.Repetition = true
		case "all":
			rules = engine.AllDrawRules
		case "none":
			rules = engine.DrawRules{}
		default:
			return engine.DrawRules{}, errors.Wrapf(errors.ErrInvalidConfig, "unknown draw rule %q", name)
		}
	}
	return rules, nil
}
