package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/evaluator"
)

func TestNegamaxSymmetricUnderSwap(t *testing.T) {
	b := bitboard.NewInitialBoard()
	for _, id := range []evaluator.ID{evaluator.Perfect, evaluator.Win} {
		a := Negamax(int32(MinWindow), int32(MaxWindow), 4, b, id)
		c := Negamax(int32(MinWindow), int32(MaxWindow), 4, b.Swap(), id)
		assert.Equal(t, a, -c, "evaluator %s", id)
	}
}

func TestNegamaxTerminalReturnsEvaluatorDirectly(t *testing.T) {
	// A fully occupied board has no legal move for either side.
	b := bitboard.Board{SideMask: 0xffffffff00000000, OppMask: 0x00000000ffffffff, Ply: 61}
	want := evaluator.EvalPerfect(b)
	got := Negamax(int32(MinWindow), int32(MaxWindow), 10, b, evaluator.Perfect)
	assert.Equal(t, want, got)
}

func TestNegamaxDepthZeroReturnsEvaluator(t *testing.T) {
	b := bitboard.NewInitialBoard()
	assert.Equal(t, evaluator.EvalNormal(b), Negamax(int32(MinWindow), int32(MaxWindow), 0, b, evaluator.Normal))
}
