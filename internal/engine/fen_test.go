package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(sq("e1")) == chess.W(chess.King) &&
					b.Get(sq("e8")) == chess.B(chess.King) &&
					b.Get(sq("e2")) == chess.W(chess.Pawn) &&
					b.Get(sq("e7")) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastlingRights
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(sq("e4")) == chess.W(chess.Pawn) &&
					b.Get(sq("e2")) == chess.NoPiece &&
					b.ToMove == chess.Black &&
					b.EnPassant == sq("e3")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.Castling.Any()
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 37 52",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 37 && b.MoveNumber == 52 && b.Castling.WhiteKingside
			},
		},
		{
			name: "clocks omitted",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - -",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 0 && b.MoveNumber == 1 && b.ToMove == chess.Black
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertTrue(t, tt.checkFn(&board), "board check failed for %q", tt.fen)
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
	}{
		{"empty", "", errors.ErrInvalidFEN},
		{"placement only", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", errors.ErrInvalidFEN},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrInvalidFEN},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrInvalidFEN},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrInvalidFEN},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", errors.ErrInvalidFEN},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", errors.ErrInvalidFEN},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", errors.ErrInvalidFEN},
		{"repeated castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1", errors.ErrInvalidFEN},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", errors.ErrInvalidFEN},
		{"bad clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", errors.ErrInvalidFEN},
		{"zero move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", errors.ErrInvalidFEN},
		{"missing king", "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1", errors.ErrInvalidPosition},
		{"two kings", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKKBNR w kq - 0 1", errors.ErrInvalidPosition},
		{"pawn on back rank", "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQq - 0 1", errors.ErrInvalidPosition},
		{"side to move in check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", nil},
		{"castling right with king and rook home", "4k3/8/8/8/8/8/8/4K2R b K - 0 1", nil},
		{"side not to move in check", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", errors.ErrInvalidPosition},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", errors.ErrInvalidPosition},
		{"castling with moved king", "4k3/8/8/8/8/8/8/3K3R w K - 0 1", errors.ErrInvalidPosition},
		{"en passant wrong rank", "4k3/8/8/8/4P3/8/8/4K3 b - e4 0 1", errors.ErrInvalidPosition},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1", errors.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBoardFromFEN(%q) error = %v, want %v", tt.fen, err, tt.wantErr)
			}
			var fenErr *errors.FENError
			testutil.AssertTrue(t, errors.As(err, &fenErr), "error should be a *FENError")
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 12 60",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 3 20",
	}
	for _, fen := range fens {
		board := mustBoard(t, fen)
		testutil.AssertEqual(t, BoardToFEN(&board), fen)
	}
}

func TestInitialBoard(t *testing.T) {
	board := InitialBoard()
	testutil.AssertTrue(t, board == mustBoard(t, InitialFEN), "InitialBoard differs from InitialFEN")
	testutil.AssertEqual(t, BoardToFEN(&board), InitialFEN)
	testutil.AssertNoError(t, ValidatePosition(&board))
	testutil.AssertEqual(t, board.Count(chess.White, chess.NoKind), 16)
	testutil.AssertEqual(t, board.Count(chess.Black, chess.Pawn), 8)
}

func TestValidatePosition_ZeroBoard(t *testing.T) {
	var board chess.Board
	testutil.AssertErrorIs(t, ValidatePosition(&board), errors.ErrInvalidPosition)
}

func TestMustBoardFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardFromFEN did not panic on bad input")
		}
	}()
	MustBoardFromFEN("not a fen")
}
