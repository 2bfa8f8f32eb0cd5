package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := colour.Direction()

	// Forward moves
	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, chess.Normal, colour)

		if from.Rank() == colour.PawnRank() {
			if two, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Class: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	for _, df := range [...]int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.Get(to)
		switch {
		case !target.IsEmpty() && target.Colour() != colour:
			moves = appendPawnMove(moves, from, to, chess.Capture, colour)
		case target.IsEmpty() && to == board.EnPassant && enPassantVictim(board, to, colour) != chess.NoSquare:
			moves = append(moves, chess.Move{From: from, To: to, Class: chess.EnPassantCapture})
		}
	}

	return moves
}

// appendPawnMove appends a pawn move, expanding it into one move per
// promotion kind when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, class chess.MoveClass, colour chess.Colour) []chess.Move {
	if to.Rank() != colour.PromotionRank() {
		return append(moves, chess.Move{From: from, To: to, Class: class})
	}
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind, Class: class})
	}
	return moves
}

// enPassantVictim returns the square of the pawn captured by an en passant
// capture onto target by colour: one rank behind the destination. It returns
// NoSquare if no enemy pawn stands there.
func enPassantVictim(board *chess.Board, target chess.Square, colour chess.Colour) chess.Square {
	sq, ok := target.Offset(0, -colour.Direction())
	if !ok || board.Get(sq) != chess.MakePiece(colour.Opposite(), chess.Pawn) {
		return chess.NoSquare
	}
	return sq
}
