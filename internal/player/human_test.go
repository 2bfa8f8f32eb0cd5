package player

import (
	"context"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestHuman_RejectsThenAccepts(t *testing.T) {
	selections := make(chan Selection, 2)
	bad := make(chan error, 1)
	good := make(chan error, 1)
	selections <- Selection{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e5"), Result: bad}
	selections <- Selection{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), Result: good}

	board := engine.InitialBoard()
	h := NewHuman(selections)
	m, err := h.ChooseMove(context.Background(), board, engine.LegalMoves(&board))

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), Class: chess.DoublePawnPush})
	testutil.AssertTrue(t, errors.Is(<-bad, errors.ErrIllegalMove), "bad selection should be reported")
	testutil.AssertNil(t, <-good)
}

func TestHuman_PromotionNeedsPiece(t *testing.T) {
	selections := make(chan Selection, 2)
	first := make(chan error, 1)
	selections <- Selection{From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("a8"), Result: first}
	selections <- Selection{From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("a8"), Promotion: chess.Rook}

	board, err := engine.NewBoardFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	testutil.AssertNoError(t, err)

	m, err := NewHuman(selections).ChooseMove(context.Background(), board, engine.LegalMoves(&board))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Promotion, chess.Rook)
	testutil.AssertError(t, <-first)
}

func TestHuman_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	board := engine.InitialBoard()
	_, err := NewHuman(make(chan Selection)).ChooseMove(ctx, board, engine.LegalMoves(&board))
	testutil.AssertTrue(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHuman_InputClosed(t *testing.T) {
	selections := make(chan Selection)
	close(selections)

	board := engine.InitialBoard()
	_, err := NewHuman(selections).ChooseMove(context.Background(), board, engine.LegalMoves(&board))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrAborted))
}
