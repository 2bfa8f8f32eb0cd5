package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// generator produces the pseudo-legal moves of the piece on from.
type generator func(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move

// generators dispatches move generation on piece kind.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return step(board, from, colour, knightOffsets, moves)
}

func bishopMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slide(board, from, colour, diagonalDirs, moves)
}

func rookMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slide(board, from, colour, straightDirs, moves)
}

func queenMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	return slide(board, from, colour, queenDirs, moves)
}

// kingMoves covers single steps and castling candidates.
func kingMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	moves = step(board, from, colour, kingOffsets, moves)
	return castleCandidates(board, from, colour, moves)
}
