package player

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FirstMove always plays the first legal move. It is deterministic and
// mostly useful in tests.
type FirstMove struct{}

// Name returns "first".
func (FirstMove) Name() string { return FirstName }

// ChooseMove returns legal[0].
func (FirstMove) ChooseMove(_ context.Context, _ chess.Board, legal []chess.Move) (chess.Move, error) {
	mustHaveMoves(legal)
	return legal[0], nil
}

// Random picks uniformly among the legal moves. A Random is not safe for
// concurrent use; give each game its own.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random policy with a fixed seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns "random".
func (r *Random) Name() string { return RandomName }

// ChooseMove returns a uniformly chosen legal move.
func (r *Random) ChooseMove(_ context.Context, _ chess.Board, legal []chess.Move) (chess.Move, error) {
	mustHaveMoves(legal)
	return legal[r.rng.Intn(len(legal))], nil
}

// CapturePreferring picks uniformly among the capturing moves when there
// are any, and uniformly among all legal moves otherwise.
type CapturePreferring struct {
	rng *rand.Rand
}

// NewCapturePreferring creates a CapturePreferring policy with a fixed seed.
func NewCapturePreferring(seed int64) *CapturePreferring {
	return &CapturePreferring{rng: rand.New(rand.NewSource(seed))}
}

// Name returns "capture".
func (c *CapturePreferring) Name() string { return CaptureName }

// ChooseMove returns a random capture if one exists.
func (c *CapturePreferring) ChooseMove(_ context.Context, _ chess.Board, legal []chess.Move) (chess.Move, error) {
	mustHaveMoves(legal)

	var captures []chess.Move
	for _, m := range legal {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return captures[c.rng.Intn(len(captures))], nil
	}
	return legal[c.rng.Intn(len(legal))], nil
}
