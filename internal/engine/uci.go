package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseUCIMove resolves a move in long algebraic form ("e2e4", "e7e8q",
// castling as the king's two-square step "e1g1") to the legal move of
// board it names.
func ParseUCIMove(board *chess.Board, s string) (chess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed move %q", s)
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed move %q", s)
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed move %q", s)
	}

	promo := chess.NoKind
	if len(s) == 5 {
		promo = chess.KindFromLetter(s[4])
		if promo == chess.NoKind || s[4] < 'a' {
			return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "malformed promotion in %q", s)
		}
	}
	return MatchMove(board, from, to, promo)
}
