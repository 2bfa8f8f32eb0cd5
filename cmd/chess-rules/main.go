// chess-rules plays, checks and counts chess games under the standard rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	closeLog, err := openLogFile(cfg, *logFile)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg)
	stop()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		fatal(err)
	}
}

// run dispatches to the mode selected by cfg.
func run(ctx context.Context, cfg *config.Config) error {
	switch {
	case cfg.Run.PerftDepth > 0:
		return runPerft(cfg)
	case cfg.Interactive():
		return runInteractive(ctx, cfg, os.Stdin, os.Stderr)
	default:
		return runSelfPlay(ctx, cfg)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
	os.Exit(1)
}

// openLogFile points cfg.LogFile at path when one is given. The returned
// function closes the file.
func openLogFile(cfg *config.Config, path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}
	cfg.LogFile = file
	return file.Close, nil
}

// runPerft prints the perft count of the start position, per root move when
// dividing.
func runPerft(cfg *config.Config) error {
	board, err := engine.NewBoardFromFEN(cfg.Rules.StartPosition())
	if err != nil {
		return err
	}

	start := time.Now()
	depth := cfg.Run.PerftDepth
	var nodes uint64
	if cfg.Run.Divide {
		counts := engine.Divide(&board, depth)
		moves := make([]string, 0, len(counts))
		for move := range counts {
			moves = append(moves, move)
		}
		sort.Strings(moves)
		for _, move := range moves {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", move, counts[move])
			nodes += counts[move]
		}
		fmt.Fprintln(cfg.OutputFile)
	} else {
		nodes = engine.Perft(&board, depth)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d) in %v\n", depth, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// runSelfPlay plays a batch of engine games and prints the summary. A
// single game is printed move by move.
func runSelfPlay(ctx context.Context, cfg *config.Config) error {
	summary, err := worker.SelfPlay(ctx, cfg)
	if summary == nil {
		return err
	}

	if cfg.Run.Games == 1 && len(summary.Results) == 1 && summary.Results[0].Error == nil {
		res := summary.Results[0].Result
		fmt.Fprintln(cfg.OutputFile, formatMoves(res.Moves, res.StartFEN))
		fmt.Fprintf(cfg.OutputFile, "%s %s\n", res.Outcome(), res.Status)
		fmt.Fprintln(cfg.OutputFile, res.FinalFEN)
		return err
	}

	summary.Print(cfg.OutputFile)
	for _, r := range summary.Results {
		if r.Error != nil && cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%v\n", r.Error)
		}
	}
	return err
}

// formatMoves numbers moves in UCI notation starting from the move number
// and side to move of fen.
func formatMoves(moves []chess.Move, fen string) string {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		board = engine.InitialBoard()
	}
	number, colour := board.MoveNumber, board.ToMove

	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case colour == chess.White:
			fmt.Fprintf(&sb, "%d. ", number)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(m.String())
		if colour == chess.Black {
			number++
		}
		colour = colour.Opposite()
	}
	return sb.String()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games between built-in players or a human, or counts\n")
	fmt.Fprintf(os.Stderr, "move-tree nodes with -perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlayers (-white, -black):\n")
	fmt.Fprintf(os.Stderr, "  human    Moves typed on stdin in UCI form (e2e4, e7e8q)\n")
	fmt.Fprintf(os.Stderr, "  random   Uniformly random legal move\n")
	fmt.Fprintf(os.Stderr, "  first    First legal move\n")
	fmt.Fprintf(os.Stderr, "  capture  Random capture if any, otherwise random move\n")
}
