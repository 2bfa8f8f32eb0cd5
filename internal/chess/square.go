package chess

// Square identifies one of the 64 squares: index = rank*8 + file, with file
// and rank both in [0,7]. a1 is 0, h8 is 63.
type Square uint8

// NoSquare marks an absent square (e.g. no en passant target).
const NoSquare Square = 64

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// NewSquare returns the square at file and rank, or false if out of range.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return Square(rank*BoardSize + file), true
}

// Sq is like NewSquare but panics on out-of-range input. For tables and tests.
func Sq(file, rank int) Square {
	s, ok := NewSquare(file, rank)
	if !ok {
		panic("chess: square out of range")
	}
	return s
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	return NewSquare(int(s[0])-'a', int(s[1])-'1')
}

// MustParseSquare is like ParseSquare but panics on bad input.
func MustParseSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// File returns the file index, 0 for 'a'.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index, 0 for '1'.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s < NumSquares
}

// Offset returns the square df files and dr ranks away, or false if that
// leaves the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// IsLight reports whether s is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}
