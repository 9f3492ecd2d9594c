package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/reversigo/internal/evaluator"
)

func TestSelectPhaseBands(t *testing.T) {
	cfg := DefaultPhaseConfig()

	tests := []struct {
		ply      int
		wantEval evaluator.ID
		wantDep  int
	}{
		{ply: MaxTurns - 10, wantEval: evaluator.Perfect, wantDep: 16}, // remaining=10 <= 16
		{ply: MaxTurns - 16, wantEval: evaluator.Perfect, wantDep: 16}, // remaining=16 <= 16
		{ply: MaxTurns - 17, wantEval: evaluator.Win, wantDep: 18},     // remaining=17
		{ply: MaxTurns - 18, wantEval: evaluator.Win, wantDep: 18},     // remaining=18
		{ply: MaxTurns - 19, wantEval: evaluator.Normal, wantDep: 8},   // remaining=19
		{ply: 1, wantEval: evaluator.Normal, wantDep: 8},
	}
	for _, tt := range tests {
		got := SelectPhase(tt.ply, cfg)
		assert.Equal(t, tt.wantEval, got.Evaluator)
		assert.Equal(t, tt.wantDep, got.Depth)
	}
}
