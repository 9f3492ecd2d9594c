package bitboard

import "math/bits"

// Side tags a board's side to move, used only for display and for
// matching the external session protocol. The search itself is
// side-symmetric and never inspects this field.
type Side int

const (
	Black Side = iota
	White
)

func (s Side) String() string {
	if s == Black {
		return "BLACK"
	}
	return "WHITE"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Black {
		return White
	}
	return Black
}

// Board is the single in-memory entity the core manipulates: the
// bitmask of squares held by the side to move, the bitmask held by the
// opponent, a display-only side tag, and the ply counter.
type Board struct {
	SideMask uint64
	OppMask  uint64
	Side     Side
	Ply      int
}

// NewInitialBoard returns the standard Reversi starting position with
// BLACK to move at ply 1.
func NewInitialBoard() Board {
	return Board{
		SideMask: 0x0000000810000000,
		OppMask:  0x0000001008000000,
		Side:     Black,
		Ply:      1,
	}
}

// Swap exchanges the side-to-move and opponent masks and flips the side
// tag, without touching Ply. The caller is responsible for calling this
// after a successful Place and before the next Decide.
func (b Board) Swap() Board {
	b.SideMask, b.OppMask = b.OppMask, b.SideMask
	b.Side = b.Side.Opposite()
	return b
}

// Occupied returns the union of both sides' discs.
func (b Board) Occupied() uint64 {
	return b.SideMask | b.OppMask
}

// Empty returns the mask of unoccupied squares.
func (b Board) Empty() uint64 {
	return ^b.Occupied()
}

// PopCount returns popcount(SideMask), popcount(OppMask).
func (b Board) PopCount() (side, opp int) {
	return bits.OnesCount64(b.SideMask), bits.OnesCount64(b.OppMask)
}

// Square is a single-square mask: exactly one bit set, or zero to mean
// "pass". Bit 63 (0x8000000000000000) is A1; bit 0 is H8.
type Square = uint64

// PassSquare is the sentinel move mask representing a pass.
const PassSquare Square = 0

// SquareFromNotation converts algebraic notation ("A1".."H8") into its
// single-square mask, per the mapping in the external interface: the
// letter selects a column by right-shifting the seed by (letter-'A')
// bits, the digit selects a row by a further right shift of (digit-1)*8.
func SquareFromNotation(col byte, row byte) Square {
	seed := uint64(0x8000000000000000)
	seed >>= uint(col - 'A')
	seed >>= uint(row-'1') * 8
	return seed
}
