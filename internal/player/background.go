package player

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// request carries a position snapshot and its legal moves to the policy
// goroutine.
type request struct {
	ctx   context.Context
	board chess.Board
	legal []chess.Move
	reply chan response
}

type response struct {
	move chess.Move
	err  error
}

// BackgroundPolicy runs a Policy on its own goroutine. The game side sends
// requests and waits for the chosen move; the policy never touches game
// state directly.
type BackgroundPolicy struct {
	policy   Policy
	requests chan request
	done     chan struct{}
}

// Background starts a goroutine serving ChooseMove calls for policy. Call
// Close to stop it.
func Background(policy Policy) *BackgroundPolicy {
	b := &BackgroundPolicy{
		policy:   policy,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	go b.serve()
	return b
}

func (b *BackgroundPolicy) serve() {
	defer close(b.done)
	for req := range b.requests {
		move, err := b.policy.ChooseMove(req.ctx, req.board, req.legal)
		// reply has room for one response
		req.reply <- response{move: move, err: err}
	}
}

// Name returns the wrapped policy's name.
func (b *BackgroundPolicy) Name() string { return b.policy.Name() }

// ChooseMove sends the request to the policy goroutine and waits for its
// answer or for ctx to be done.
func (b *BackgroundPolicy) ChooseMove(ctx context.Context, board chess.Board, legal []chess.Move) (chess.Move, error) {
	mustHaveMoves(legal)

	req := request{
		ctx:   ctx,
		board: board,
		legal: append([]chess.Move(nil), legal...),
		reply: make(chan response, 1),
	}
	select {
	case b.requests <- req:
	case <-ctx.Done():
		return chess.Move{}, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.move, resp.err
	case <-ctx.Done():
		return chess.Move{}, ctx.Err()
	}
}

// Close stops the policy goroutine after any in-flight request finishes.
func (b *BackgroundPolicy) Close() {
	close(b.requests)
	<-b.done
}
