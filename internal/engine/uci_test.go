package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseUCIMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		input   string
		want    chess.Move
		wantErr bool
	}{
		{
			name:  "knight move",
			fen:   InitialFEN,
			input: "g1f3",
			want:  chess.Move{From: sq("g1"), To: sq("f3")},
		},
		{
			name:  "castle",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			input: "e1g1",
			want:  chess.Move{From: sq("e1"), To: sq("g1"), Class: chess.KingsideCastle},
		},
		{
			name:  "promotion",
			fen:   "8/P7/8/8/8/8/8/k6K w - - 0 1",
			input: "a7a8n",
			want:  chess.Move{From: sq("a7"), To: sq("a8"), Promotion: chess.Knight},
		},
		{name: "too short", fen: InitialFEN, input: "e2", wantErr: true},
		{name: "bad square", fen: InitialFEN, input: "z9e4", wantErr: true},
		{name: "bad promotion letter", fen: "8/P7/8/8/8/8/8/k6K w - - 0 1", input: "a7a8x", wantErr: true},
		{name: "upper case promotion letter", fen: "8/P7/8/8/8/8/8/k6K w - - 0 1", input: "a7a8Q", wantErr: true},
		{name: "illegal", fen: InitialFEN, input: "e1e2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got, err := ParseUCIMove(&board, tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrIllegalMove) {
					t.Fatalf("ParseUCIMove(%q) error = %v, want ErrIllegalMove", tt.input, err)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, got.String(), tt.input)
		})
	}
}
