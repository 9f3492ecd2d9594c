// Package evaluator scores a board from the perspective of the side to
// move. Higher is better; negamax negates the result on recursion so an
// evaluator never needs to know which color it is scoring.
package evaluator

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/config"
)

// ID selects which of the four evaluators to run.
type ID int

const (
	// Normal is the mid-game weighted heuristic.
	Normal ID = iota
	// Perfect is the exact disc differential, used for endgame solving.
	Perfect
	// Win reduces Perfect to its sign, used to answer "do I win" cheaply.
	Win
	// PointTable is a fixed per-square weight table kept only as a
	// diagnostic path; production phase selection never chooses it.
	PointTable
)

func (id ID) String() string {
	switch id {
	case Normal:
		return "NORMAL"
	case Perfect:
		return "PERFECT"
	case Win:
		return "WIN"
	case PointTable:
		return "POINTTABLE"
	default:
		panic(invalidIDMsg(id))
	}
}

func invalidIDMsg(id ID) string {
	return fmt.Sprintf("evaluator: evaluator id out of range: %d", int(id))
}

// Evaluate dispatches to the evaluator named by id. An id outside the
// four defined values is a programmer error, never a runtime condition,
// and aborts the process with a descriptive diagnostic.
func Evaluate(id ID, b bitboard.Board) int32 {
	switch id {
	case Normal:
		if config.Settings.Eval.UseDebugPointTable {
			return EvalByPointTable(b)
		}
		return EvalNormal(b)
	case Perfect:
		return EvalPerfect(b)
	case Win:
		return EvalWin(b)
	case PointTable:
		return EvalByPointTable(b)
	default:
		panic(invalidIDMsg(id))
	}
}

// terminalScore returns (score, true) when one side holds no discs at
// all, the convention EvalNormal honors before doing any feature
// computation. EvalPerfect and EvalWin do not consult it: a wiped-out
// side scores the plain disc differential (or its sign).
func terminalScore(b bitboard.Board) (int32, bool) {
	side, opp := b.PopCount()
	if side == 0 {
		return math.MinInt32, true
	}
	if opp == 0 {
		return math.MaxInt32, true
	}
	return 0, false
}

// EvalPerfect is the exact endgame evaluator: the disc differential.
func EvalPerfect(b bitboard.Board) int32 {
	side, opp := b.PopCount()
	return int32(side - opp)
}

// EvalWin reduces EvalPerfect to {-1, 0, +1}.
func EvalWin(b bitboard.Board) int32 {
	d := EvalPerfect(b)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// edge bundles the bit patterns needed to evaluate wings, C-moves, and
// stable discs for one of the board's four edges. All four edges share
// the same predicate family against these rotated masks.
type edge struct {
	cornersEmpty uint64 // both corners of this edge are empty
	block        uint64 // the 4 central edge squares
	fullRow      uint64 // all 8 squares of the row/column containing the edge
	wingLow      uint64 // 5-disc run at squares 2-6, square 7 empty
	wingLowGap   uint64
	wingHigh     uint64 // 5-disc run at squares 3-7, square 2 empty
	wingHighGap  uint64
	cSquares     uint64 // the two C-squares of this edge
}

var edges = [4]edge{
	{ // top edge (A1-H1)
		cornersEmpty: 0x8100000000000000,
		block:        0x3c00000000000000,
		fullRow:      0xff00000000000000,
		wingLow:      0x7c00000000000000,
		wingLowGap:   0x0200000000000000,
		wingHigh:     0x3e00000000000000,
		wingHighGap:  0x4000000000000000,
		cSquares:     0x4200000000000000,
	},
	{ // left edge (A1-A8)
		cornersEmpty: 0x8000000000000080,
		block:        0x0000808080800000,
		fullRow:      0x8080808080808080,
		wingLow:      0x0080808080800000,
		wingLowGap:   0x0000000000008000,
		wingHigh:     0x0000808080808000,
		wingHighGap:  0x0080000000000000,
		cSquares:     0x0080000000008000,
	},
	{ // right edge (H1-H8)
		cornersEmpty: 0x0100000000000001,
		block:        0x0000010101010000,
		fullRow:      0x0101010101010101,
		wingLow:      0x0001010101010000,
		wingLowGap:   0x0000000000000100,
		wingHigh:     0x0000010101010100,
		wingHighGap:  0x0001000000000000,
		cSquares:     0x0001000000000100,
	},
	{ // bottom edge (A8-H8)
		cornersEmpty: 0x0000000000000081,
		block:        0x000000000000003c,
		fullRow:      0x00000000000000ff,
		wingLow:      0x000000000000007c,
		wingLowGap:   0x0000000000000002,
		wingHigh:     0x000000000000003e,
		wingHighGap:  0x0000000000000040,
		cSquares:     0x0000000000000042,
	},
}

// wingsAndCMoves returns the wing count and the dangerous-C-square count
// for own across all four edges. A wing is scored only once per edge
// when its corners are both still empty and the central block plus one
// more disc forms the classic wing shape; otherwise, still with both
// corners empty, any disc played on one of the edge's C-squares (with no
// full central block yet) counts as a risky C-move.
func wingsAndCMoves(own uint64, empty uint64) (wings, cMoves int32) {
	for _, e := range edges {
		if empty&e.cornersEmpty != e.cornersEmpty {
			continue
		}
		if own&e.block == e.block {
			if (own&e.fullRow == e.wingLow && empty&e.wingLowGap == e.wingLowGap) ||
				(own&e.fullRow == e.wingHigh && empty&e.wingHighGap == e.wingHighGap) {
				wings++
			}
		} else {
			cMoves += int32(bits.OnesCount64(own & e.cSquares))
		}
	}
	return wings, cMoves
}

type corner struct {
	mask    uint64 // the corner square itself
	rayA    func(mask uint64, i uint) uint64
	rayALen int // full-edge length along rayA (8)
	rayB    func(mask uint64, i uint) uint64
	rayBLen int // full-edge length along rayB (7)
}

func shiftDown(mask uint64, i uint) uint64  { return mask >> (8 * i) }
func shiftUp(mask uint64, i uint) uint64    { return mask << (8 * i) }
func shiftRight(mask uint64, i uint) uint64 { return mask >> i }
func shiftLeft(mask uint64, i uint) uint64  { return mask << i }

var corners = [4]corner{
	{mask: 0x8000000000000000, rayA: shiftDown, rayALen: 8, rayB: shiftRight, rayBLen: 7},  // A1: down, right
	{mask: 0x0100000000000000, rayA: shiftDown, rayALen: 8, rayB: shiftLeft, rayBLen: 7},   // H1: down, left
	{mask: 0x0000000000000001, rayA: shiftUp, rayALen: 8, rayB: shiftLeft, rayBLen: 7},     // H8: up, left
	{mask: 0x0000000000000080, rayA: shiftUp, rayALen: 8, rayB: shiftRight, rayBLen: 7},    // A8: up, right
}

// stableCount counts discs anchored at a played corner and extending
// along its two adjacent edges. A fully-owned ray of the edge's full
// length is halved (to 4 and 3 respectively) so the corner square is not
// double-counted across the two rays sharing it. Preserved exactly as
// the source defines it: this is not a true stability proof and may
// over-count discs that are stable for other (interior) reasons.
func stableCount(own uint64) int32 {
	var total int32
	for _, c := range corners {
		if own&c.mask != c.mask {
			continue
		}
		// the first ray's count of 1 seeds with the corner disc itself;
		// the second ray does not recount the corner.
		total += rayCount(own, c.mask, c.rayA, 1, c.rayALen)
		total += rayCount(own, c.mask, c.rayB, 0, c.rayBLen)
	}
	return total
}

func rayCount(own uint64, anchor uint64, step func(uint64, uint) uint64, start int, fullLen int) int32 {
	count := start
	for i := uint(1); i < 8; i++ {
		if own&step(anchor, i) == step(anchor, i) {
			count++
			continue
		}
		break
	}
	if count == fullLen {
		if fullLen == 8 {
			return 4
		}
		return 3
	}
	return int32(count)
}

var xSquares = [4]struct{ disc, corner uint64 }{
	{disc: 0x0040000000000000, corner: 0x8000000000000000}, // B2 guards A1
	{disc: 0x0002000000000000, corner: 0x0100000000000000}, // G2 guards H1
	{disc: 0x0000000000000200, corner: 0x0000000000000001}, // G7 guards H8
	{disc: 0x0000000000004000, corner: 0x0000000000000080}, // B7 guards A8
}

func xMoveCount(own uint64, empty uint64) int32 {
	var count int32
	for _, x := range xSquares {
		if own&x.disc == x.disc && empty&x.corner == x.corner {
			count++
		}
	}
	return count
}

// openness is the number of empty squares among mask's 8 neighbors;
// board edges contribute nothing: each direction carries an edge guard
// mask, and a direction is skipped when mask lies on that guard, so a
// neighbor that would fall off the board is never counted.
func openness(empty uint64, mask uint64) int32 {
	var count int32
	dirs := []struct{ edgeGuard, shift uint64 }{
		{0x00000000000000ff, mask >> 8}, // down
		{0x80808080808080ff, mask >> 7}, // down-left
		{0x8080808080808080, mask << 1}, // left
		{0xff80808080808080, mask << 9}, // up-left
		{0xff00000000000000, mask << 8}, // up
		{0xff01010101010101, mask << 7}, // up-right
		{0x0101010101010101, mask >> 1}, // right
		{0x01010101010101ff, mask >> 9}, // down-right
	}
	for _, d := range dirs {
		if mask&d.edgeGuard != 0 {
			continue
		}
		if d.shift&empty != 0 {
			count++
		}
	}
	return count
}

// EvalNormal is the mid-game heuristic: six symmetric features (side
// minus opponent) each weighted and summed.
func EvalNormal(b bitboard.Board) int32 {
	if score, ok := terminalScore(b); ok {
		return score
	}

	empty := b.Empty()

	sideWings, sideC := wingsAndCMoves(b.SideMask, empty)
	oppWings, oppC := wingsAndCMoves(b.OppMask, empty)

	sideStable := stableCount(b.SideMask)
	oppStable := stableCount(b.OppMask)

	sideX := xMoveCount(b.SideMask, empty)
	oppX := xMoveCount(b.OppMask, empty)

	sideMobility := int32(bits.OnesCount64(bitboard.LegalMoves(b)))
	oppMobility := int32(bits.OnesCount64(bitboard.LegalMoves(b.Swap())))

	var sideOpenness, oppOpenness int32
	mask := uint64(0x8000000000000000)
	for i := 0; i < 64; i++ {
		switch {
		case b.SideMask&mask != 0:
			sideOpenness += openness(empty, mask)
		case b.OppMask&mask != 0:
			oppOpenness += openness(empty, mask)
		}
		mask >>= 1
	}

	w := config.Settings.Eval
	return (sideStable-oppStable)*int32(w.StableWeight) +
		(sideWings-oppWings)*int32(w.WingWeight) +
		(sideX-oppX)*int32(w.XMoveWeight) +
		(sideC-oppC)*int32(w.CMoveWeight) +
		(sideMobility-oppMobility)*int32(w.MobilityWeight) +
		(sideOpenness-oppOpenness)*int32(w.OpennessWeight)
}

// pointTableEntry is one row of the debug point table: a mask of
// squares sharing a weight, and that weight.
type pointTableEntry struct {
	mask   uint64
	weight int32
}

var pointTable = []pointTableEntry{
	{0x8100000000000081, 100},  // corners
	{0x4281000000008142, -50},  // B1/A2 style X-adjacent corners
	{0x2400810000810024, 10},   // C1/A3 style
	{0x0042000000004200, -70},  // B2 X-squares
	{0x0024420000422400, -5},   // C2
	{0x0018244242241800, -10},  // D2/C3
	{0x0000182424180000, -5},   // D3
}

// EvalByPointTable is the debug-only fixed-weight evaluator. It is
// never selected by the production phase/evaluator selector, but is
// kept as a diagnostic path.
func EvalByPointTable(b bitboard.Board) int32 {
	var score int32
	for _, e := range pointTable {
		score += int32(bits.OnesCount64(b.SideMask&e.mask)) * e.weight
		score -= int32(bits.OnesCount64(b.OppMask&e.mask)) * e.weight
	}
	return score
}
