package worker

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/player"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Summary tallies the outcomes of a batch of games.
type Summary struct {
	Games      int // games requested
	Played     int // games that produced a result
	WhiteWins  int
	BlackWins  int
	Draws      int // stalemates and rule draws
	Unfinished int // stopped by the ply limit
	Errors     int
	Duplicates int
	Unique     int  // distinct games held by the duplicate table
	TableFull  bool // duplicate table reached its capacity
	TotalPly   int
	Captures   int
	Outcomes   map[string]int // count per status description
	Features   map[string]int // games showing each replay feature
	Results    []ProcessResult
}

func newSummary(games int) *Summary {
	return &Summary{
		Games:    games,
		Outcomes: make(map[string]int),
		Features: make(map[string]int),
	}
}

func (s *Summary) add(r ProcessResult) {
	s.Played++
	s.Results = append(s.Results, r)
	if r.Duplicate {
		s.Duplicates++
	}
	if r.Error != nil {
		s.Errors++
		return
	}

	if r.Analysis != nil {
		s.Captures += r.Analysis.Captures
		for _, feature := range r.Analysis.Features() {
			s.Features[feature]++
		}
	}

	res := r.Result
	s.TotalPly += res.Ply
	if res.Truncated {
		s.Unfinished++
		return
	}
	s.Outcomes[res.Status.String()]++
	switch res.Status.Kind {
	case engine.Checkmate:
		if res.Status.Winner == chess.White {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	case engine.Stalemate, engine.Draw:
		s.Draws++
	}
}

// AveragePly returns the mean game length of the games without errors.
func (s *Summary) AveragePly() float64 {
	n := s.Played - s.Errors
	if n == 0 {
		return 0
	}
	return float64(s.TotalPly) / float64(n)
}

// Print writes a human readable report to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Games played: %d of %d\n", s.Played, s.Games)
	fmt.Fprintf(w, "White wins: %d\n", s.WhiteWins)
	fmt.Fprintf(w, "Black wins: %d\n", s.BlackWins)
	fmt.Fprintf(w, "Draws: %d\n", s.Draws)
	if s.Unfinished > 0 {
		fmt.Fprintf(w, "Stopped at ply limit: %d\n", s.Unfinished)
	}
	if s.Errors > 0 {
		fmt.Fprintf(w, "Errors: %d\n", s.Errors)
	}
	if s.Duplicates > 0 {
		fmt.Fprintf(w, "Duplicate games: %d\n", s.Duplicates)
	}
	if s.Unique > 0 {
		fmt.Fprintf(w, "Distinct games: %d\n", s.Unique)
	}
	if s.TableFull {
		fmt.Fprintln(w, "Duplicate table full: later games were checked but not stored")
	}
	fmt.Fprintf(w, "Average length: %.1f plies\n", s.AveragePly())
	fmt.Fprintf(w, "Captures: %d\n", s.Captures)

	printCounts(w, "Endings:", s.Outcomes)
	printCounts(w, "Games with:", s.Features)
}

func printCounts(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	fmt.Fprintln(w, title)
	for _, key := range keys {
		fmt.Fprintf(w, "  %-32s %d\n", key, counts[key])
	}
}

// lockedWriter serialises writes from games running on different workers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// PlayFunc returns a ProcessFunc that plays one game per work item with the
// policies named in cfg. When dups is not nil each finished game is checked
// against the games already played.
func PlayFunc(ctx context.Context, cfg *config.Config, dups *hashing.ThreadSafeDuplicateDetector) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		out := ProcessResult{Index: item.Index}

		white, err := player.New(cfg.Players.White, item.Seed)
		if err != nil {
			out.Error = err
			return out
		}
		black, err := player.New(cfg.Players.Black, item.Seed+1)
		if err != nil {
			out.Error = err
			return out
		}

		out.Result, out.Error = game.NewMatch(white, black, cfg).Run(ctx)
		if out.Error != nil {
			out.Error = errors.Wrapf(out.Error, "game %d", item.Index+1)
			return out
		}
		out.Analysis, out.Error = processing.AnalyzeGame(out.Result.StartFEN, out.Result.Moves)
		if out.Error != nil {
			out.Analysis = nil
			out.Error = errors.Wrapf(out.Error, "game %d replay", item.Index+1)
			return out
		}
		if dups != nil {
			out.Duplicate = dups.CheckAndAdd(hashing.NewGameSignature(&out.Result.Final, out.Result.Moves))
		}
		return out
	}
}

// SelfPlay plays cfg.Run.Games engine games on cfg.Run.Workers workers and
// tallies the results. Game i uses seeds derived from cfg.Players.Seed, so
// a batch is reproducible regardless of scheduling. Results are ordered by
// game index.
func SelfPlay(ctx context.Context, cfg *config.Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Interactive() {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "self-play needs engine players on both sides")
	}

	gameCfg := *cfg
	gameCfg.LogFile = &lockedWriter{w: cfg.LogFile}

	var dups *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Detect {
		dups = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}

	pool := NewPool(PlayFunc(ctx, &gameCfg, dups),
		WithWorkers(cfg.Run.Workers),
		WithBufferSize(cfg.Run.BufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i := 0; i < cfg.Run.Games; i++ {
			if !pool.Submit(ctx, WorkItem{Index: i, Seed: cfg.Players.Seed + int64(2*i)}) {
				pool.Stop()
				return
			}
		}
	}()

	summary := newSummary(cfg.Run.Games)
	for result := range pool.Results() {
		summary.add(result)
	}
	if dups != nil {
		stats := dups.Stats()
		summary.Unique = stats.Unique
		summary.TableFull = stats.Full
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Index < summary.Results[j].Index
	})
	return summary, ctx.Err()
}
