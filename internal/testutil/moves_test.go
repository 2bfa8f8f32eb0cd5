package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestAssertSameMoves_OrderIgnored(t *testing.T) {
	a := chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), Class: chess.DoublePawnPush}
	b := chess.Move{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("f3")}

	AssertSameMoves(t, []chess.Move{a, b}, []chess.Move{b, a})
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{
		{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("f3")},
		{From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("a8"), Promotion: chess.Queen},
	}
	AssertEqual(t, MoveStrings(moves), []string{"a7a8q", "g1f3"})
	AssertSameMoveStrings(t, moves, []string{"g1f3", "a7a8q"})
}

func TestAssertSameMoveStrings_NoMoves(t *testing.T) {
	// MoveStrings never returns nil, so an empty want has to match an empty
	// non-nil slice.
	AssertSameMoveStrings(t, nil, []string{})
	AssertSameMoveStrings(t, []chess.Move{}, nil)
	AssertSameMoveStrings(t, []chess.Move{}, []string{})
}
