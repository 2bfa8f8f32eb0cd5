package chess

// MoveClass categorizes moves for board-update logic and rights bookkeeping.
type MoveClass int

const (
	Normal MoveClass = iota
	Capture
	EnPassantCapture
	KingsideCastle
	QueensideCastle
	DoublePawnPush
)

// String returns the class name.
func (c MoveClass) String() string {
	names := []string{"Normal", "Capture", "EnPassantCapture", "KingsideCastle", "QueensideCastle", "DoublePawnPush"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a plain value describing a move; it carries no behaviour.
type Move struct {
	// Source square.
	From Square

	// Destination square. For castling, the king's destination.
	To Square

	// The piece kind promoted to, NoKind if not a promotion.
	Promotion Kind

	// Class of move (normal, capture, castle, etc.).
	Class MoveClass
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Class == Capture || m.Class == EnPassantCapture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// CastleSide returns the side of a castling move. Only valid if IsCastle.
func (m Move) CastleSide() CastleSide {
	if m.Class == QueensideCastle {
		return Queenside
	}
	return Kingside
}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
