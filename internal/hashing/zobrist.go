package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// numPieceCodes covers every Piece value MakePiece can produce.
const numPieceCodes = int(chess.NumKinds) << 1

var (
	zobristPiece     [numPieceCodes][chess.NumSquares]uint64
	zobristCastle    [4]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash returns the Zobrist key of board. Two boards share a
// key when they have the same placement, side to move, castling rights and
// en passant capture possibility; the clocks are not hashed. The en passant
// file only counts when a pawn of the side to move stands ready to take.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64

	for sq, p := range board.Squares {
		if !p.IsEmpty() {
			key ^= zobristPiece[p][sq]
		}
	}

	if board.ToMove == chess.Black {
		key ^= zobristSide
	}

	rights := [...]bool{
		board.Castling.WhiteKingside, board.Castling.WhiteQueenside,
		board.Castling.BlackKingside, board.Castling.BlackQueenside,
	}
	for i, held := range rights {
		if held {
			key ^= zobristCastle[i]
		}
	}

	if enPassantCapturable(board) {
		key ^= zobristEnPassant[board.EnPassant.File()]
	}

	return key
}

// enPassantCapturable reports whether a pawn of the side to move is beside
// the pawn that just double-pushed.
func enPassantCapturable(board *chess.Board) bool {
	if !board.HasEnPassant() {
		return false
	}
	pawn := chess.MakePiece(board.ToMove, chess.Pawn)
	for _, df := range [...]int{-1, 1} {
		if sq, ok := board.EnPassant.Offset(df, -board.ToMove.Direction()); ok && board.Get(sq) == pawn {
			return true
		}
	}
	return false
}

// WeakHash is a cheap placement-only hash: the sum of piece codes weighted
// by square. It is used as a secondary check alongside the Zobrist key.
func WeakHash(board *chess.Board) uint64 {
	var h uint64
	for sq, p := range board.Squares {
		if !p.IsEmpty() {
			h += uint64(p) * uint64(sq+1) * 0x9E3779B1
		}
	}
	return h
}
