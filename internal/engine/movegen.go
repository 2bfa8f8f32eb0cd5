package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// defaultMoveListLength is the initial capacity of a generated move list.
const defaultMoveListLength = 48

// GeneratePseudoLegal returns every move of the side to move that obeys
// piece movement and board occupancy, without checking whether the mover's
// king is left in check. It never modifies board.
func GeneratePseudoLegal(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, defaultMoveListLength)
	colour := board.ToMove
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Squares[sq]
		if piece.IsEmpty() || piece.Colour() != colour {
			continue
		}
		if gen := generators[piece.Kind()]; gen != nil {
			moves = gen(board, sq, colour, moves)
		}
	}
	return moves
}

// PseudoLegalFrom returns the pseudo-legal moves of the piece on sq, which
// must belong to the side to move.
func PseudoLegalFrom(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.Get(sq)
	if piece.IsEmpty() || piece.Colour() != board.ToMove {
		return nil
	}
	gen := generators[piece.Kind()]
	if gen == nil {
		return nil
	}
	return gen(board, sq, piece.Colour(), nil)
}
