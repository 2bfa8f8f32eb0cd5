package player

import (
	"context"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func mustBoard(t *testing.T, fen string) chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

func enginePolicies() []Policy {
	return []Policy{FirstMove{}, NewRandom(1), NewCapturePreferring(1)}
}

func TestPolicies_ReturnLegalMove(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/P7/8/8/8/8/8/k6K w - - 0 1",
	}
	for _, p := range enginePolicies() {
		for _, fen := range fens {
			board := mustBoard(t, fen)
			legal := engine.LegalMoves(&board)
			for i := 0; i < 20; i++ {
				m, err := p.ChooseMove(context.Background(), board, legal)
				testutil.AssertNoError(t, err)
				testutil.AssertTrue(t, slices.Contains(legal, m), "%s chose %v, not a legal move", p.Name(), m)
			}
		}
	}
}

func TestPolicies_PanicOnEmptyMoveSet(t *testing.T) {
	policies := append(enginePolicies(), NewHuman(make(chan Selection)))
	for _, p := range policies {
		t.Run(p.Name(), func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, errors.ErrNoLegalMoves) {
					t.Errorf("recover() = %v, want ErrNoLegalMoves", r)
				}
			}()
			p.ChooseMove(context.Background(), engine.InitialBoard(), nil)
		})
	}
}

func TestFirstMove(t *testing.T) {
	board := engine.InitialBoard()
	legal := engine.LegalMoves(&board)
	m, err := FirstMove{}.ChooseMove(context.Background(), board, legal)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, legal[0])
}

func TestRandom_SeedIsDeterministic(t *testing.T) {
	board := engine.InitialBoard()
	legal := engine.LegalMoves(&board)

	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 10; i++ {
		ma, _ := a.ChooseMove(context.Background(), board, legal)
		mb, _ := b.ChooseMove(context.Background(), board, legal)
		testutil.AssertEqual(t, ma, mb)
	}
}

func TestRandom_CoversMoves(t *testing.T) {
	board := engine.InitialBoard()
	legal := engine.LegalMoves(&board)
	r := NewRandom(7)

	seen := make(map[chess.Move]bool)
	for i := 0; i < 2000; i++ {
		m, _ := r.ChooseMove(context.Background(), board, legal)
		seen[m] = true
	}
	testutil.AssertEqual(t, len(seen), len(legal))
}

func TestCapturePreferring(t *testing.T) {
	// Only e4xd5 and e4xf5 capture.
	board := mustBoard(t, "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1")
	legal := engine.LegalMoves(&board)
	c := NewCapturePreferring(3)

	for i := 0; i < 50; i++ {
		m, err := c.ChooseMove(context.Background(), board, legal)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, m.IsCapture(), "chose non-capture %v", m)
	}

	quiet := engine.InitialBoard()
	m, err := c.ChooseMove(context.Background(), quiet, engine.LegalMoves(&quiet))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, m.IsCapture())
}

func TestNew(t *testing.T) {
	for _, name := range []string{RandomName, FirstName, CaptureName} {
		p, err := New(name, 1)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, p.Name(), name)
	}

	_, err := New("minimax", 1)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrUnknownPolicy))

	_, err = New(HumanName, 1)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrUnknownPolicy))

	testutil.AssertEqual(t, Names(), []string{"capture", "first", "human", "random"})
	testutil.AssertTrue(t, IsKnown(HumanName))
	testutil.AssertFalse(t, IsKnown("minimax"))
}
