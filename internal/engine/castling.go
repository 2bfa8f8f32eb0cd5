package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var castleSides = [...]chess.CastleSide{chess.Kingside, chess.Queenside}

// kingHome returns the square colour's king starts on.
func kingHome(colour chess.Colour) chess.Square {
	return chess.Sq(chess.KingHomeFile, colour.HomeRank())
}

// rookHome returns the square colour's castling rook for side starts on.
func rookHome(colour chess.Colour, side chess.CastleSide) chess.Square {
	return chess.Sq(side.RookHomeFile(), colour.HomeRank())
}

func castleClass(side chess.CastleSide) chess.MoveClass {
	if side == chess.Kingside {
		return chess.KingsideCastle
	}
	return chess.QueensideCastle
}

// castleCandidates appends the castling moves that pass the structural
// gates: the right is still held, king and rook are on their home squares,
// every square between them is empty, and the king is not in check. Whether
// the king crosses or lands on an attacked square is left to the legality
// filter.
func castleCandidates(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	if from != kingHome(colour) {
		return moves
	}

	checked := false
	evaluated := false
	for _, side := range castleSides {
		if !board.Castling.Has(colour, side) {
			continue
		}
		rookSq := rookHome(colour, side)
		if board.Get(rookSq) != chess.MakePiece(colour, chess.Rook) {
			continue
		}
		if !isPathEmpty(board, from, rookSq) {
			continue
		}
		if !evaluated {
			checked = IsSquareAttacked(board, from, colour.Opposite())
			evaluated = true
		}
		if checked {
			return moves
		}
		to := chess.Sq(side.KingTargetFile(), colour.HomeRank())
		moves = append(moves, chess.Move{From: from, To: to, Class: castleClass(side)})
	}
	return moves
}

// isCastleTransitSafe reports whether the king's start square, every square
// it passes through and its destination are all unattacked by the opponent.
func isCastleTransitSafe(board *chess.Board, move chess.Move) bool {
	colour := board.ToMove
	rank := move.From.Rank()
	dir := sign(move.To.File() - move.From.File())
	for f := move.From.File(); ; f += dir {
		sq := chess.Sq(f, rank)
		if IsSquareAttacked(board, sq, colour.Opposite()) {
			return false
		}
		if f == move.To.File() {
			return true
		}
	}
}

// moveCastlingRook relocates the rook for a castling move by colour.
func moveCastlingRook(board *chess.Board, colour chess.Colour, side chess.CastleSide) {
	from := rookHome(colour, side)
	to := chess.Sq(side.RookTargetFile(), colour.HomeRank())
	board.Set(to, board.Get(from))
	board.Set(from, chess.NoPiece)
}

// updateCastlingRights removes castling rights when a king or rook leaves
// its home square or a rook is captured on it. Rights are never restored.
func updateCastlingRights(board *chess.Board, from, to chess.Square) {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		if from == kingHome(colour) || to == kingHome(colour) {
			board.Castling.RevokeAll(colour)
		}
		for _, side := range castleSides {
			home := rookHome(colour, side)
			if from == home || to == home {
				board.Castling.Revoke(colour, side)
			}
		}
	}
}
