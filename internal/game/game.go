// Package game tracks a single game of chess: the live position, the moves
// played to reach it and the status that follows from them.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// RepetitionLimit is the number of occurrences of a position that draws the
// game when the repetition rule is enabled.
const RepetitionLimit = 3

// Game owns the live board and the move history. It is not safe for
// concurrent use.
type Game struct {
	start   chess.Board
	board   chess.Board
	history []chess.Move
	rules   engine.DrawRules
	reps    *hashing.RepetitionTable
}

// Option configures a Game.
type Option func(*Game)

// WithDrawRules enables the given draw rules. Without it a game only ends
// by checkmate or stalemate.
func WithDrawRules(rules engine.DrawRules) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// New starts a game from the standard initial position.
func New(opts ...Option) *Game {
	return newGame(engine.InitialBoard(), opts)
}

// NewFromFEN starts a game from the position described by fen.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(board, opts), nil
}

func newGame(board chess.Board, opts []Option) *Game {
	g := &Game{
		start: board,
		board: board,
		reps:  hashing.NewRepetitionTable(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reps.Record(&g.board)
	return g
}

// Board returns a copy of the current position.
func (g *Game) Board() chess.Board {
	return g.board
}

// StartBoard returns a copy of the starting position.
func (g *Game) StartBoard() chess.Board {
	return g.start
}

// DrawRules returns the draw rules in force.
func (g *Game) DrawRules() engine.DrawRules {
	return g.rules
}

// Status returns the status of the current position. Checkmate and
// stalemate take precedence over the optional draw rules.
func (g *Game) Status() engine.Status {
	status := engine.ComputeStatus(&g.board)
	if status.IsTerminal() || !g.rules.Any() {
		return status
	}
	if reason, ok := g.rules.Check(&g.board); ok {
		return engine.Status{Kind: engine.Draw, Reason: reason}
	}
	if g.rules.Repetition && g.reps.Count(&g.board) >= RepetitionLimit {
		return engine.Status{Kind: engine.Draw, Reason: engine.ThreefoldRepetition}
	}
	return status
}

// LegalMoves returns the moves available to the side to move, or nil once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.Status().IsTerminal() {
		return nil
	}
	return engine.LegalMoves(&g.board)
}

// Apply plays move. The move must be one of LegalMoves(); otherwise the
// returned *errors.MoveError wraps errors.ErrIllegalMove, or
// errors.ErrGameOver when the game has already ended, and the game is left
// unchanged.
func (g *Game) Apply(move chess.Move) error {
	if err := g.checkOver(move); err != nil {
		return err
	}

	ply := len(g.history) + 1
	next, err := engine.ApplyMove(g.board, move)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = ply
		}
		return err
	}

	g.board = next
	g.history = append(g.history, move)
	g.reps.Record(&g.board)
	return nil
}

// checkOver returns a *errors.MoveError wrapping errors.ErrGameOver when
// the game has ended.
func (g *Game) checkOver(move chess.Move) error {
	status := g.Status()
	if !status.IsTerminal() {
		return nil
	}
	return &errors.MoveError{
		Err:  errors.Wrap(errors.ErrGameOver, status.String()),
		Move: move,
		FEN:  g.FEN(),
		Ply:  len(g.history) + 1,
	}
}

// Play resolves a selection of origin, destination and promotion kind to a
// legal move and applies it. After the game has ended it fails with
// errors.ErrGameOver whatever the selection.
func (g *Game) Play(from, to chess.Square, promo chess.Kind) (chess.Move, error) {
	if err := g.checkOver(chess.Move{From: from, To: to, Promotion: promo}); err != nil {
		return chess.Move{}, err
	}
	move, err := engine.MatchMove(&g.board, from, to, promo)
	if err != nil {
		return move, g.withPly(err)
	}
	return move, g.Apply(move)
}

// PlayUCI applies a move given in UCI coordinate notation, e.g. "e2e4" or
// "e7e8q". Like Play it reports errors.ErrGameOver once the game has ended.
func (g *Game) PlayUCI(s string) (chess.Move, error) {
	if err := g.checkOver(uciSquares(s)); err != nil {
		return chess.Move{}, err
	}
	move, err := engine.ParseUCIMove(&g.board, s)
	if err != nil {
		return move, g.withPly(err)
	}
	return move, g.Apply(move)
}

// uciSquares reads the squares of a UCI move for error reports.
func uciSquares(s string) chess.Move {
	move := chess.Move{From: chess.NoSquare, To: chess.NoSquare}
	if len(s) >= 4 {
		if sq, ok := chess.ParseSquare(s[0:2]); ok {
			move.From = sq
		}
		if sq, ok := chess.ParseSquare(s[2:4]); ok {
			move.To = sq
		}
	}
	return move
}

func (g *Game) withPly(err error) error {
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		moveErr.Ply = len(g.history) + 1
	}
	return err
}

// History returns a copy of the moves played so far.
func (g *Game) History() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	copy(moves, g.history)
	return moves
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(&g.board)
}

// Repetitions returns how many times the current position has occurred.
func (g *Game) Repetitions() int {
	return g.reps.Count(&g.board)
}
