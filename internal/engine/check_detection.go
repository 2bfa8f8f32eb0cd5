package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could capture on sq.
// The attack shapes are exactly the capture shapes of the move generator.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a pawn attacks diagonally forward, so look one
	// rank behind sq from the attacker's point of view.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, df := range [...]int{-1, 1} {
		if from, ok := sq.Offset(df, -byColour.Direction()); ok && board.Get(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.MakePiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.MakePiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedBySlider(board, sq, chess.MakePiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(board, sq, chess.MakePiece(byColour, chess.Rook), queen, straightDirs)
}

func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Piece, offsets []direction) bool {
	for _, off := range offsets {
		if from, ok := sq.Offset(off.df, off.dr); ok && board.Get(from) == attacker {
			return true
		}
	}
	return false
}

func attackedBySlider(board *chess.Board, sq chess.Square, slider, queen chess.Piece, dirs []direction) bool {
	for _, dir := range dirs {
		cur := sq
		for {
			next, ok := cur.Offset(dir.df, dir.dr)
			if !ok {
				break
			}
			piece := board.Get(next)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur = next
		}
	}
	return false
}
