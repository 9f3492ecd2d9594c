package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/evaluator"
)

func TestDecideNoLegalMovesReturnsPass(t *testing.T) {
	b := bitboard.Board{SideMask: bitboard.SquareFromNotation('A', '1')}
	d := NewDecider(DefaultPhaseConfig())
	got := d.Decide(b, 60000, evaluator.Normal, 4)
	assert.Equal(t, bitboard.PassSquare, got.Move)
}

func TestDecideSingleLegalMoveSkipsSearch(t *testing.T) {
	// A board with exactly one opponent disc bracketed by a single side
	// disc along one ray has exactly one legal move: playing it.
	b := bitboard.Board{
		SideMask: bitboard.SquareFromNotation('D', '1'),
		OppMask:  bitboard.SquareFromNotation('D', '2'),
		Ply:      1,
	}
	legal := bitboard.LegalMoves(b)
	require.Equal(t, 1, popcount(legal))

	d := NewDecider(DefaultPhaseConfig())
	got := d.Decide(b, 60000, evaluator.Normal, 4)
	assert.Equal(t, legal, got.Move)
}

func TestDecideReturnsLegalRootMove(t *testing.T) {
	b := bitboard.NewInitialBoard()
	d := NewDecider(DefaultPhaseConfig())
	got := d.Decide(b, 60000, evaluator.Perfect, 4)
	legal := bitboard.LegalMoves(b)
	assert.NotEqual(t, uint64(0), legal&got.Move)
}

func popcount(mask uint64) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}
