package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of board to depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *board
		makeMove(&next, m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move's
// UCI string.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(board) {
		next := *board
		makeMove(&next, m)
		counts[m.String()] = Perft(&next, depth-1)
	}
	return counts
}
