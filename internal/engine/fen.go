// Package engine provides chess move generation, legality checking and
// board transitions.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// backRank is the piece order on the first and eighth ranks.
var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// InitialBoard returns the standard starting position.
func InitialBoard() chess.Board {
	board := chess.NewBoard()
	for file, kind := range backRank {
		board.Set(chess.Sq(file, chess.White.HomeRank()), chess.W(kind))
		board.Set(chess.Sq(file, chess.White.PawnRank()), chess.W(chess.Pawn))
		board.Set(chess.Sq(file, chess.Black.PawnRank()), chess.B(chess.Pawn))
		board.Set(chess.Sq(file, chess.Black.HomeRank()), chess.B(kind))
	}
	board.Castling = chess.AllCastlingRights
	return board
}

// NewBoardFromFEN creates a board from a FEN string. The placement, side to
// move, castling and en passant fields are required; the two clocks default
// to 0 and 1. The result is checked with ValidatePosition.
func NewBoardFromFEN(fen string) (chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return chess.Board{}, fenError(fen, "fields", fmt.Sprintf("expected 4 to 6 fields, got %d", len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(&board, fen, parts[0]); err != nil {
		return chess.Board{}, err
	}
	if err := parseSideToMove(&board, fen, parts[1]); err != nil {
		return chess.Board{}, err
	}
	if err := parseCastlingRights(&board, fen, parts[2]); err != nil {
		return chess.Board{}, err
	}
	if err := parseEnPassant(&board, fen, parts[3]); err != nil {
		return chess.Board{}, err
	}
	if err := parseClocks(&board, fen, parts[4:]); err != nil {
		return chess.Board{}, err
	}

	if err := ValidatePosition(&board); err != nil {
		return chess.Board{}, &errors.FENError{Err: err, FEN: fen, Field: "position"}
	}
	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error. For tables
// and tests.
func MustBoardFromFEN(fen string) chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

func fenError(fen, field, got string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, FEN: fen, Field: field, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every rank must describe exactly eight squares.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "placement", fmt.Sprintf("expected 8 ranks, got %d", len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return fenError(fen, "placement", fmt.Sprintf("invalid piece character %q", c))
			}
			sq, ok := chess.NewSquare(file, rank)
			if !ok {
				return fenError(fen, "placement", fmt.Sprintf("rank %d is too long", rank+1))
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(sq, chess.MakePiece(colour, kind))
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, "placement", fmt.Sprintf("rank %d has %d squares", rank+1, file))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Only the
// standard KQkq letters are accepted, each at most once.
func parseCastlingRights(board *chess.Board, fen, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	for _, c := range field {
		var flag *bool
		switch c {
		case 'K':
			flag = &board.Castling.WhiteKingside
		case 'Q':
			flag = &board.Castling.WhiteQueenside
		case 'k':
			flag = &board.Castling.BlackKingside
		case 'q':
			flag = &board.Castling.BlackQueenside
		default:
			return fenError(fen, "castling", field)
		}
		if *flag {
			return fenError(fen, "castling", field)
		}
		*flag = true
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, fen, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(fen, "en passant", field)
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen string, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError(fen, "halfmove clock", fields[0])
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fenError(fen, "fullmove number", fields[1])
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
