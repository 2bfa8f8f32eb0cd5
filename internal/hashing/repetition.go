package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Record notes an occurrence of board and returns how many times its
// position has now been seen.
func (r *RepetitionTable) Record(board *chess.Board) int {
	key := GenerateZobristHash(board)
	r.counts[key]++
	return r.counts[key]
}

// Count returns how many times the position of board has been recorded.
func (r *RepetitionTable) Count(board *chess.Board) int {
	return r.counts[GenerateZobristHash(board)]
}

// Len returns the number of distinct positions recorded.
func (r *RepetitionTable) Len() int {
	return len(r.counts)
}

// Reset forgets every position.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
}
