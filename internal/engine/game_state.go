package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// StatusKind is the coarse state of a position.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
	Draw
)

// String returns the status kind name.
func (k StatusKind) String() string {
	names := []string{"InProgress", "Checkmate", "Stalemate", "Draw"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// DrawReason says which rule produced a Draw status.
type DrawReason int

const (
	NoDrawReason DrawReason = iota
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns a human readable reason.
func (r DrawReason) String() string {
	switch r {
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "none"
	}
}

// Status is the game status of a position. Winner is only meaningful for
// Checkmate and Reason only for Draw. It is always derived from a board,
// never stored alongside one.
type Status struct {
	Kind   StatusKind
	Winner chess.Colour
	Reason DrawReason
}

// IsTerminal reports whether no further moves are played.
func (s Status) IsTerminal() bool {
	return s.Kind != InProgress
}

// Result returns the PGN-style result string: "1-0", "0-1", "1/2-1/2" or "*".
func (s Status) Result() string {
	switch s.Kind {
	case Checkmate:
		if s.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case Stalemate, Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String describes the status.
func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return fmt.Sprintf("checkmate, %v wins", s.Winner)
	case Stalemate:
		return "stalemate"
	case Draw:
		return fmt.Sprintf("draw by %v", s.Reason)
	default:
		return "in progress"
	}
}

// ComputeStatus derives the status of board from its legal move set: no
// legal moves and in check is checkmate for the opponent, no legal moves and
// not in check is stalemate, anything else is in progress. Draw rules are
// not applied here; see DrawRules.Check.
func ComputeStatus(board *chess.Board) Status {
	if HasLegalMoves(board) {
		return Status{Kind: InProgress}
	}
	colour := board.ToMove
	if IsInCheck(board, colour) {
		return Status{Kind: Checkmate, Winner: colour.Opposite()}
	}
	return Status{Kind: Stalemate}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
