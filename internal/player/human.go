package player

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Selection is a move confirmed in a user interface: origin, destination
// and, for promotions, the chosen piece. The outcome of matching it
// against the legal moves is sent on Result when Result is not nil.
type Selection struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
	Result    chan<- error
}

// Human forwards selections made in a user interface. Selections that do
// not name a legal move are reported back on their Result channel and the
// policy keeps waiting.
type Human struct {
	selections <-chan Selection
}

// NewHuman creates a Human fed from selections.
func NewHuman(selections <-chan Selection) *Human {
	return &Human{selections: selections}
}

// Name returns "human".
func (h *Human) Name() string { return HumanName }

// ChooseMove blocks until a selection matching a legal move arrives, the
// selection channel is closed, or ctx is done.
func (h *Human) ChooseMove(ctx context.Context, board chess.Board, legal []chess.Move) (chess.Move, error) {
	mustHaveMoves(legal)

	for {
		select {
		case <-ctx.Done():
			return chess.Move{}, ctx.Err()
		case sel, ok := <-h.selections:
			if !ok {
				return chess.Move{}, errors.ErrAborted
			}
			move, err := engine.MatchMove(&board, sel.From, sel.To, sel.Promotion)
			if err == nil && !slices.Contains(legal, move) {
				err = &errors.MoveError{Err: errors.ErrIllegalMove, Move: move, FEN: engine.BoardToFEN(&board)}
			}
			reply(sel.Result, err)
			if err == nil {
				return move, nil
			}
		}
	}
}

// reply reports err to the submitter without blocking.
func reply(result chan<- error, err error) {
	if result == nil {
		return
	}
	select {
	case result <- err:
	default:
	}
}
