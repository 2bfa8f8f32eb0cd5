package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard parses fen or aborts the test.
func mustBoard(t testing.TB, fen string) chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// play applies a sequence of UCI moves to board and returns the result.
func play(t testing.TB, board chess.Board, moves ...string) chess.Board {
	t.Helper()
	for _, s := range moves {
		m, err := ParseUCIMove(&board, s)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q) on %q failed: %v", s, BoardToFEN(&board), err)
		}
		board, err = ApplyMove(board, m)
		if err != nil {
			t.Fatalf("ApplyMove(%v) failed: %v", m, err)
		}
	}
	return board
}

func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}
