// Package processing replays recorded games to validate them and to find
// notable features such as repetitions, underpromotions and en passant.
package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Feature names reported by GameAnalysis.Features.
const (
	FeatureFiftyMove       = "fifty-move rule"
	FeatureSeventyFiveMove = "seventy-five-move rule"
	FeatureRepetition      = "threefold repetition"
	FeatureFivefold        = "fivefold repetition"
	FeatureUnderpromotion  = "underpromotion"
	FeatureEnPassant       = "en passant"
	FeatureCastling        = "castling"
	FeatureInsufficient    = "insufficient material"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        chess.Board
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	HasEnPassant      bool
	HasCastling       bool
	Positions         []uint64 // Zobrist hashes for repetition detection

	Captures int
	Checks   int

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
}

// Features lists the names of the features found, in a fixed order.
func (ga *GameAnalysis) Features() []string {
	var features []string
	add := func(found bool, name string) {
		if found {
			features = append(features, name)
		}
	}
	add(ga.HasFiftyMoveRule, FeatureFiftyMove)
	add(ga.Has75MoveRule, FeatureSeventyFiveMove)
	add(ga.HasRepetition, FeatureRepetition)
	add(ga.Has5FoldRepetition, FeatureFivefold)
	add(ga.HasUnderpromotion, FeatureUnderpromotion)
	add(ga.HasEnPassant, FeatureEnPassant)
	add(ga.HasCastling, FeatureCastling)
	add(ga.HasInsufficientMaterial, FeatureInsufficient)
	return features
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
}

// AnalyzeGame replays moves from the position startFEN and analyzes the
// game for various features. Replay stops at the first illegal move, which
// is reported as an error carrying its ply; the analysis covers the moves
// before it.
func AnalyzeGame(startFEN string, moves []chess.Move) (*GameAnalysis, error) {
	board, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	analysis := &GameAnalysis{}

	posHash := hashing.GenerateZobristHash(&board)
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}

	for i, move := range moves {
		next, err := engine.ApplyMove(board, move)
		if err != nil {
			var moveErr *errors.MoveError
			if errors.As(err, &moveErr) {
				moveErr.Ply = i + 1
			}
			analysis.FinalBoard = board
			return analysis, err
		}
		board = next

		// 50-move rule (100 half-moves)
		if board.HalfmoveClock >= engine.FiftyMoveLimit {
			analysis.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves - automatic draw)
		if board.HalfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}

		if move.IsPromotion() && move.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		if move.Class == chess.EnPassantCapture {
			analysis.HasEnPassant = true
		}
		if move.IsCastle() {
			analysis.HasCastling = true
		}
		if move.IsCapture() {
			analysis.Captures++
		}
		if engine.IsInCheck(&board, board.ToMove) {
			analysis.Checks++
		}

		posHash = hashing.GenerateZobristHash(&board)
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++

		// 3-fold repetition
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition (automatic draw)
		if positionCount[posHash] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	// Check for insufficient material at final position
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(&board)

	analysis.FinalBoard = board
	return analysis, nil
}

// ReplayGame replays moves from startFEN and returns the final position.
func ReplayGame(startFEN string, moves []chess.Move) (chess.Board, error) {
	analysis, err := AnalyzeGame(startFEN, moves)
	if analysis == nil {
		return chess.Board{}, err
	}
	return analysis.FinalBoard, err
}

// ValidateGame validates that all moves are legal from startFEN.
func ValidateGame(startFEN string, moves []chess.Move) *ValidationResult {
	result := &ValidationResult{Valid: true}

	board, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		result.Valid = false
		result.ErrorMsg = fmt.Sprintf("invalid FEN: %s", startFEN)
		result.Err = err
		return result
	}

	for i, move := range moves {
		next, err := engine.ApplyMove(board, move)
		if err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, move)
			result.Err = err
			return result
		}
		board = next
	}

	return result
}
