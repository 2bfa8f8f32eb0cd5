package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// sortMoves orders moves by origin, destination, promotion then class so
// move sets can be compared regardless of generation order.
var sortMoves = cmpopts.SortSlices(func(a, b chess.Move) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	if a.Promotion != b.Promotion {
		return a.Promotion < b.Promotion
	}
	return a.Class < b.Class
})

// AssertSameMoves fails if got and want do not hold the same moves,
// ignoring order.
func AssertSameMoves(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	assertDiff(t, "move sets differ", got, want, []cmp.Option{sortMoves, cmpopts.EquateEmpty()}, msgAndArgs...)
}

// MoveStrings returns the UCI strings of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// AssertSameMoveStrings compares moves against UCI strings, ignoring order.
// An empty want matches no moves whether or not the slice is nil.
func AssertSameMoveStrings(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	assertDiff(t, "move sets differ", MoveStrings(got), want,
		[]cmp.Option{cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()},
		msgAndArgs...)
}
