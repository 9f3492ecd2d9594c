// Package bitboard implements the 8x8 Reversi board as a pair of 64-bit
// masks plus the legal-move generator and the place/flip operator.
package bitboard

import "fmt"

// Direction is one of the eight rays a disc can bracket an opponent run
// along. Values match the numbering in the shift/clip table: 0 is up,
// then clockwise around the compass to 7 (up-left).
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// numDirections bounds the valid range of Direction; anything outside
// [0, numDirections) is a programmer error, never a runtime condition.
const numDirections = 8

// clip is applied after shifting to erase bits that wrapped around an
// edge of the board.
var clip = [numDirections]uint64{
	Up:        0xffffffffffffff00,
	UpRight:   0x7f7f7f7f7f7f7f00,
	Right:     0x7f7f7f7f7f7f7f7f,
	DownRight: 0x007f7f7f7f7f7f7f,
	Down:      0x00ffffffffffffff,
	DownLeft:  0x00fefefefefefefe,
	Left:      0xfefefefefefefefe,
	UpLeft:    0xfefefefefefefe00,
}

// shift moves every bit of b one step in direction dir and clips bits that
// would otherwise wrap to the opposite edge of the board.
func shift(b uint64, dir Direction) uint64 {
	switch dir {
	case Up:
		return (b << 8) & clip[Up]
	case UpRight:
		return (b << 7) & clip[UpRight]
	case Right:
		return (b >> 1) & clip[Right]
	case DownRight:
		return (b >> 9) & clip[DownRight]
	case Down:
		return (b >> 8) & clip[Down]
	case DownLeft:
		return (b >> 7) & clip[DownLeft]
	case Left:
		return (b << 1) & clip[Left]
	case UpLeft:
		return (b << 9) & clip[UpLeft]
	default:
		// An out-of-range direction index is an internal violation per
		// the error handling design: it can only be reached by
		// programmer error, so it aborts rather than returning a status.
		panic(invalidDirectionMsg(dir))
	}
}

func invalidDirectionMsg(dir Direction) string {
	return fmt.Sprintf("bitboard: direction index out of range: %d", int(dir))
}

const (
	horizontalEligible = 0x7e7e7e7e7e7e7e7e
	verticalEligible   = 0x00FFFFFFFFFFFF00
	diagonalEligible   = 0x007e7e7e7e7e7e00
)

// eligibleMask returns the edge-clipping mask applied to the opponent
// mask before sweeping in dir, selecting the horizontal, vertical or
// diagonal family.
func eligibleMask(dir Direction) uint64 {
	switch dir {
	case Left, Right:
		return horizontalEligible
	case Up, Down:
		return verticalEligible
	default:
		return diagonalEligible
	}
}

var allDirections = [numDirections]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
