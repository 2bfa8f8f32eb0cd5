package chess

// CastleSide selects the kingside or queenside castle.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns "kingside" or "queenside".
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// RookHomeFile returns the file the castling rook starts on.
func (s CastleSide) RookHomeFile() int {
	if s == Kingside {
		return BoardSize - 1
	}
	return 0
}

// KingTargetFile returns the file the king lands on after castling.
func (s CastleSide) KingTargetFile() int {
	if s == Kingside {
		return 6
	}
	return 2
}

// RookTargetFile returns the file the rook lands on after castling.
func (s CastleSide) RookTargetFile() int {
	if s == Kingside {
		return 5
	}
	return 3
}

// KingHomeFile is the file both kings start on.
const KingHomeFile = 4

// CastlingRights holds the four independent castling flags. Flags are only
// ever cleared during play, never set again.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights has every flag set, as in the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether colour may still castle on side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case side == Kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Revoke clears one flag.
func (r *CastlingRights) Revoke(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		r.WhiteKingside = false
	case colour == White:
		r.WhiteQueenside = false
	case side == Kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both flags of colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, Kingside)
	r.Revoke(colour, Queenside)
}

// Any reports whether any flag is set.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var b []byte
	if r.WhiteKingside {
		b = append(b, 'K')
	}
	if r.WhiteQueenside {
		b = append(b, 'Q')
	}
	if r.BlackKingside {
		b = append(b, 'k')
	}
	if r.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Board represents a chess position with all state needed for the game.
//
// Board is a value: assigning or passing it copies the whole position, so a
// Board received from elsewhere is a snapshot that cannot affect its source.
//
// The zero Board is not a position: it has no kings and its EnPassant is a1
// rather than NoSquare. Positions come from engine.InitialBoard or a parsed
// FEN; engine.ValidatePosition rejects a zero Board.
type Board struct {
	// Squares holds the occupancy, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square a pawn passed over on the previous double push, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1.
	MoveNumber uint
}

// NewBoard creates an empty board with White to move and no rights.
func NewBoard() Board {
	return Board{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// Get returns the piece on sq, or NoPiece for empty or off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// FindKing returns the square of colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many pieces of the given colour and kind are on the
// board. NoKind counts every piece of that colour.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b.Squares {
		if p.IsEmpty() || p.Colour() != colour {
			continue
		}
		if kind == NoKind || p.Kind() == kind {
			n++
		}
	}
	return n
}

// HasEnPassant reports whether an en passant target is set.
func (b *Board) HasEnPassant() bool {
	return b.EnPassant.Valid()
}
