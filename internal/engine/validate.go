package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ValidatePosition checks the invariants every reachable position holds.
// It returns an error wrapping errors.ErrInvalidPosition describing the
// first violation found.
func ValidatePosition(board *chess.Board) error {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return errors.Wrapf(errors.ErrInvalidPosition, "%v has %d kings", colour, n)
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range [...]int{0, chess.BoardSize - 1} {
			sq := chess.Sq(file, rank)
			if board.Get(sq).Kind() == chess.Pawn {
				return errors.Wrapf(errors.ErrInvalidPosition, "pawn on %v", sq)
			}
		}
	}

	if IsInCheck(board, board.ToMove.Opposite()) {
		return errors.Wrapf(errors.ErrInvalidPosition, "%v is in check but not to move", board.ToMove.Opposite())
	}

	if err := validateCastlingRights(board); err != nil {
		return err
	}
	return validateEnPassant(board)
}

// validateCastlingRights rejects rights whose king or rook has left its
// home square.
func validateCastlingRights(board *chess.Board) error {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		for _, side := range castleSides {
			if !board.Castling.Has(colour, side) {
				continue
			}
			if board.Get(kingHome(colour)) != chess.MakePiece(colour, chess.King) ||
				board.Get(rookHome(colour, side)) != chess.MakePiece(colour, chess.Rook) {
				return errors.Wrapf(errors.ErrInvalidPosition, "%v cannot castle %v", colour, side)
			}
		}
	}
	return nil
}

// validateEnPassant checks that the target square is the one a pawn of the
// side not to move just passed over: on the third rank from that side's
// view, empty, with the pawn one rank beyond it and its start square empty.
func validateEnPassant(board *chess.Board) error {
	if !board.HasEnPassant() {
		return nil
	}
	target := board.EnPassant
	mover := board.ToMove.Opposite()
	if target.Rank() != mover.PawnRank()+mover.Direction() {
		return errors.Wrapf(errors.ErrInvalidPosition, "en passant target %v on wrong rank", target)
	}
	start, _ := target.Offset(0, -mover.Direction())
	if !board.IsEmpty(target) || !board.IsEmpty(start) ||
		enPassantVictim(board, target, board.ToMove) == chess.NoSquare {
		return errors.Wrapf(errors.ErrInvalidPosition, "en passant target %v without a double-pushed pawn", target)
	}
	return nil
}
