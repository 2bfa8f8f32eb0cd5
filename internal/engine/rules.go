package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the fifty-move rule
// applies.
const FiftyMoveLimit = 100

// DrawRules selects which optional draw rules apply. The zero value
// disables all of them, so a position is only ever drawn by stalemate.
type DrawRules struct {
	InsufficientMaterial bool
	FiftyMove            bool
	// Repetition needs the game history and is applied by the game, not
	// by Check.
	Repetition bool
}

// AllDrawRules enables every draw rule.
var AllDrawRules = DrawRules{InsufficientMaterial: true, FiftyMove: true, Repetition: true}

// Any reports whether any rule is enabled.
func (r DrawRules) Any() bool {
	return r.InsufficientMaterial || r.FiftyMove || r.Repetition
}

// Check reports the first enabled position-only draw rule that applies to
// board: insufficient material, then the fifty-move rule.
func (r DrawRules) Check(board *chess.Board) (DrawReason, bool) {
	if r.InsufficientMaterial && HasInsufficientMaterial(board) {
		return InsufficientMaterial, true
	}
	if r.FiftyMove && board.HalfmoveClock >= FiftyMoveLimit {
		return FiftyMoveRule, true
	}
	return NoDrawReason, false
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}

		kind := piece.Kind()

		// Kings don't count for material
		if kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}
