package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var (
	diagonalDirs  = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([]direction{}, diagonalDirs...), straightDirs...)
	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slide appends the moves of a sliding piece walking each direction until
// the board edge or an occupied square. An enemy blocker is included as a
// capture; a friendly blocker is not.
func slide(board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		sq := from
		for {
			next, ok := sq.Offset(dir.df, dir.dr)
			if !ok {
				break
			}
			target := board.Get(next)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: next, Class: chess.Normal})
				sq = next
				continue
			}
			if target.Colour() != colour {
				moves = append(moves, chess.Move{From: from, To: next, Class: chess.Capture})
			}
			break // Blocked
		}
	}
	return moves
}

// step appends the moves of a piece with a fixed offset table, skipping
// off-board squares and squares held by friendly pieces.
func step(board *chess.Board, from chess.Square, colour chess.Colour, offsets []direction, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to, ok := from.Offset(off.df, off.dr)
		if !ok {
			continue
		}
		target := board.Get(to)
		switch {
		case target.IsEmpty():
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Normal})
		case target.Colour() != colour:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.Capture})
		}
	}
	return moves
}

// isPathEmpty reports whether every square strictly between a and b on the
// same rank is empty.
func isPathEmpty(board *chess.Board, a, b chess.Square) bool {
	dir := sign(b.File() - a.File())
	for f := a.File() + dir; f != b.File(); f += dir {
		sq, _ := chess.NewSquare(f, a.Rank())
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}
