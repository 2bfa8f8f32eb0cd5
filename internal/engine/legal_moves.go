package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LegalMoves returns the pseudo-legal moves of the side to move that do not
// leave its own king in check. Castling additionally requires the king's
// start, transit and destination squares to be unattacked.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := GeneratePseudoLegal(board)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if isSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalFrom(board, sq) {
		if isSafe(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, m := range GeneratePseudoLegal(board) {
		if isSafe(board, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether move, including its class and promotion, is in
// the legal move set of board.
func IsLegal(board *chess.Board, move chess.Move) bool {
	return slices.Contains(LegalMoves(board), move)
}

// isSafe plays m on a copy of board and reports whether the mover's king is
// safe afterwards.
func isSafe(board *chess.Board, m chess.Move) bool {
	colour := board.ToMove
	if m.IsCastle() && !isCastleTransitSafe(board, m) {
		return false
	}
	trial := *board
	makeMove(&trial, m)
	return !IsInCheck(&trial, colour)
}

// MatchMove resolves a UI selection of origin, destination and optional
// promotion kind to the canonical classified legal move. When the
// selection could promote, promo must name the piece; unmatched or
// ambiguous selections are rejected rather than coerced.
func MatchMove(board *chess.Board, from, to chess.Square, promo chess.Kind) (chess.Move, error) {
	attempt := chess.Move{From: from, To: to, Promotion: promo}

	var candidates []chess.Move
	for _, m := range LegalMovesFrom(board, from) {
		if m.To == to {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return attempt, &errors.MoveError{Err: errors.ErrIllegalMove, Move: attempt, FEN: BoardToFEN(board)}
	}

	idx := slices.IndexFunc(candidates, func(m chess.Move) bool {
		return m.Promotion == promo
	})
	if idx < 0 {
		reason := "promotion piece required"
		if promo != chess.NoKind {
			reason = "not a promotion"
			if candidates[0].IsPromotion() {
				reason = "invalid promotion piece " + promo.String()
			}
		}
		return attempt, &errors.MoveError{
			Err:  errors.Wrap(errors.ErrIllegalMove, reason),
			Move: attempt,
			FEN:  BoardToFEN(board),
		}
	}
	return candidates[idx], nil
}
