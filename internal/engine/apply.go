package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove returns the position after playing move on board. The move must
// be an element of LegalMoves(board); any other move is rejected with an
// error wrapping errors.ErrIllegalMove and the input board is returned
// unchanged.
func ApplyMove(board chess.Board, move chess.Move) (chess.Board, error) {
	if !IsLegal(&board, move) {
		return board, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Move: move,
			FEN:  BoardToFEN(&board),
		}
	}

	next := board
	makeMove(&next, move)
	return next, nil
}

// makeMove plays a move on board in place without any legality check. It is
// only called on boards owned by the caller: trial copies inside the
// legality filter and the copy returned by ApplyMove.
func makeMove(board *chess.Board, move chess.Move) {
	colour := board.ToMove
	piece := board.Get(move.From)
	captured := board.Get(move.To)

	board.Set(move.From, chess.NoPiece)

	switch move.Class {
	case chess.EnPassantCapture:
		// The captured pawn is behind the destination, not on it
		if victim := enPassantVictim(board, move.To, colour); victim != chess.NoSquare {
			captured = board.Get(victim)
			board.Set(victim, chess.NoPiece)
		}

	case chess.KingsideCastle, chess.QueensideCastle:
		moveCastlingRook(board, colour, move.CastleSide())
	}

	if move.IsPromotion() {
		board.Set(move.To, chess.MakePiece(colour, move.Promotion))
	} else {
		board.Set(move.To, piece)
	}

	updateCastlingRights(board, move.From, move.To)

	// Set en passant square if double pawn push
	board.EnPassant = chess.NoSquare
	if move.Class == chess.DoublePawnPush {
		board.EnPassant = chess.Sq(move.From.File(), (move.From.Rank()+move.To.Rank())/2)
	}

	// Pawn moves and captures reset the clock
	if piece.Kind() == chess.Pawn || !captured.IsEmpty() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}
