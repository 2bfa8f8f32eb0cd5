package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(&board)
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromFEN(fen)
		BoardToFEN(&board)
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(&board)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{
			name: "PawnMove",
			fen:  benchFENs["Initial"],
			move: chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), Class: chess.DoublePawnPush},
		},
		{
			name: "PieceMove",
			fen:  benchFENs["Initial"],
			move: chess.Move{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("f3")},
		},
		{
			name: "Castling",
			fen:  benchFENs["Castling"],
			move: chess.Move{From: chess.MustParseSquare("e1"), To: chess.MustParseSquare("g1"), Class: chess.KingsideCastle},
		},
		{
			name: "EnPassant",
			fen:  benchFENs["EnPassant"],
			move: chess.Move{From: chess.MustParseSquare("f5"), To: chess.MustParseSquare("e6"), Class: chess.EnPassantCapture},
		},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			board := mustBoard(b, tc.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ApplyMove(board, tc.move); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := InitialBoard()
		for _, s := range moves {
			m, _ := ParseUCIMove(&board, s)
			board, _ = ApplyMove(board, m)
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		board := mustBoard(b, benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(&board, chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		board := mustBoard(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			IsInCheck(&board, chess.White)
		}
	})
}

func BenchmarkHasLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			board := mustBoard(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HasLegalMoves(&board)
			}
		})
	}
}

func BenchmarkPerft(b *testing.B) {
	board := InitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(&board, 3)
	}
}
