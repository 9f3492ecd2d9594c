// Package search implements negamax with fail-soft alpha-beta pruning
// over a bitboard.Board, the root-parallel decider that fans one
// goroutine out per legal root move, and the ply-based phase/evaluator
// selector.
package search

import (
	"math"
	"math/bits"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/evaluator"
)

// Window bounds avoid overflow when negated at the root.
const (
	MinWindow = math.MinInt32 + 1
	MaxWindow = math.MaxInt32 - 1
)

// Negamax searches depthRemaining plies from b using alpha-beta pruning
// in fail-soft form: a child score that meets or exceeds beta is
// returned immediately even though it may lie outside (alpha, beta).
// Do not change this to fail-hard — it affects which move the root
// decider settles on when multiple children tie at the window edge.
func Negamax(alpha, beta int32, depthRemaining int, b bitboard.Board, id evaluator.ID) int32 {
	if depthRemaining == 0 {
		return evaluator.Evaluate(id, b)
	}

	legal := bitboard.LegalMoves(b)
	if legal == 0 {
		swapped := b.Swap()
		if bitboard.LegalMoves(swapped) == 0 {
			return evaluator.Evaluate(id, b)
		}
		return -Negamax(-beta, -alpha, depthRemaining, swapped, id)
	}

	best := int32(math.MinInt32)
	for bit := uint64(1); bit != 0; bit <<= 1 {
		if legal&bit == 0 {
			continue
		}
		child := b
		bitboard.Place(&child, bit)
		child = child.Swap()

		score := -Negamax(-beta, -alpha, depthRemaining-1, child, id)
		if score >= beta {
			return score
		}
		if score > best {
			best = score
			if best > alpha {
				alpha = best
			}
		}
	}
	return best
}

// legalMoveSquares returns each set bit of mask as its own single-square
// mask, in ascending bit order (bit 0 upward), matching the enumeration
// order negamax and the root decider both use.
func legalMoveSquares(mask uint64) []bitboard.Square {
	squares := make([]bitboard.Square, 0, bits.OnesCount64(mask))
	for bit := uint64(1); bit != 0; bit <<= 1 {
		if mask&bit != 0 {
			squares = append(squares, bit)
		}
	}
	return squares
}
