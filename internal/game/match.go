package game

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/player"
)

// Result is the outcome of a Match.
type Result struct {
	Status    engine.Status
	Ply       int
	Moves     []chess.Move
	StartFEN  string
	FinalFEN  string
	Final     chess.Board
	Truncated bool // stopped by the ply limit before a terminal status
}

// Outcome returns the result string: "1-0", "0-1", "1/2-1/2" or "*" for a
// game that was cut short.
func (r Result) Outcome() string {
	return r.Status.Result()
}

// Match plays a game between two policies under cfg.Rules.
type Match struct {
	White player.Policy
	Black player.Policy
	cfg   *config.Config
}

// NewMatch creates a match. cfg supplies the starting position, draw rules,
// ply limit and the log writer.
func NewMatch(white, black player.Policy, cfg *config.Config) *Match {
	return &Match{White: white, Black: black, cfg: cfg}
}

func (m *Match) policy(colour chess.Colour) player.Policy {
	if colour == chess.White {
		return m.White
	}
	return m.Black
}

// Run plays the game until a terminal status, the ply limit or
// cancellation of ctx. The status is checked before every policy call, so a
// policy is never asked to move in a finished position. On error the
// returned Result holds the game up to that point.
func (m *Match) Run(ctx context.Context) (Result, error) {
	g, err := NewFromFEN(m.cfg.Rules.StartPosition(), WithDrawRules(m.cfg.Rules.DrawRules))
	if err != nil {
		return Result{}, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return m.result(g, false), err
		}
		if g.Status().IsTerminal() {
			break
		}
		if m.cfg.Rules.MaxPly > 0 && g.Ply() >= m.cfg.Rules.MaxPly {
			res := m.result(g, true)
			m.logSummary(res)
			return res, nil
		}

		board := g.Board()
		p := m.policy(board.ToMove)
		move, err := p.ChooseMove(ctx, board, engine.LegalMoves(&board))
		if err != nil {
			return m.result(g, false), fmt.Errorf("%v (%s) at ply %d: %w", board.ToMove, p.Name(), g.Ply()+1, err)
		}
		if err := g.Apply(move); err != nil {
			return m.result(g, false), errors.Wrapf(err, "%v (%s)", board.ToMove, p.Name())
		}

		if m.cfg.Verbosity > 1 {
			m.logPly(g, board.ToMove, move)
		}
	}

	res := m.result(g, false)
	m.logSummary(res)
	return res, nil
}

func (m *Match) result(g *Game, truncated bool) Result {
	start := g.StartBoard()
	return Result{
		Status:    g.Status(),
		Ply:       g.Ply(),
		Moves:     g.History(),
		StartFEN:  engine.BoardToFEN(&start),
		FinalFEN:  g.FEN(),
		Final:     g.Board(),
		Truncated: truncated,
	}
}

// logPly writes one line per move, noting positions that have occurred
// before.
func (m *Match) logPly(g *Game, mover chess.Colour, move chess.Move) {
	if n := g.Repetitions(); n > 1 {
		fmt.Fprintf(m.cfg.LogFile, "%3d. %-5v %s (position seen %d times)\n", g.Ply(), mover, move, n)
		return
	}
	fmt.Fprintf(m.cfg.LogFile, "%3d. %-5v %s\n", g.Ply(), mover, move)
}

func (m *Match) logSummary(res Result) {
	if m.cfg.Verbosity < 1 {
		return
	}
	outcome := res.Status.String()
	if res.Truncated {
		outcome = "stopped at ply limit"
	}
	fmt.Fprintf(m.cfg.LogFile, "%s vs %s: %s %s after %d plies\n",
		m.White.Name(), m.Black.Name(), res.Outcome(), outcome, res.Ply)
}
