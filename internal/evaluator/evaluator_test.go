package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/config"
)

// TestMain loads config.Settings before any test runs so EvalNormal's
// feature weights are the real production defaults rather than zero
// values, mirroring the teacher's evaluator_test.go TestMain.
func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func TestEvalPerfectInitialPositionIsZero(t *testing.T) {
	assert.Equal(t, int32(0), EvalPerfect(bitboard.NewInitialBoard()))
}

func TestEvalWinIsSignOfEvalPerfect(t *testing.T) {
	tests := []struct {
		name string
		b    bitboard.Board
		want int32
	}{
		{"ahead", bitboard.Board{SideMask: 0x000000000000000f, OppMask: 0x0000000000000030}, 1},
		{"even", bitboard.NewInitialBoard(), 0},
		{"behind", bitboard.Board{SideMask: 0x0000000000000030, OppMask: 0x000000000000000f}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvalWin(tt.b))
		})
	}
}

func TestStableCountSingleCorner(t *testing.T) {
	own := bitboard.SquareFromNotation('A', '1')
	assert.Equal(t, int32(1), stableCount(own))
}

func TestStableCountFullTopRow(t *testing.T) {
	// Both corners anchor a downward ray of length 1 (the column below
	// is empty) and an across ray of full length 7, which the source's
	// algorithm halves to 3 each: 2 * (1 + 3) = 8.
	own := uint64(0xff00000000000000)
	assert.Equal(t, int32(8), stableCount(own))
}

func TestWingDetection(t *testing.T) {
	// Top edge: both corners empty, central 4 squares (C1-F1) plus B1
	// forming the 2-6 run, with G1 (square 7) empty; constructed
	// directly from the edge masks.
	top := edges[0]
	own := top.wingLow // B1..F1 side-owned run with G1 left open
	empty := top.cornersEmpty | top.wingLowGap
	wings, cMoves := wingsAndCMoves(own, empty)
	assert.Equal(t, int32(1), wings)
	assert.Equal(t, int32(0), cMoves)
}

func TestCMoveDetectionWithoutBlock(t *testing.T) {
	top := edges[0]
	own := uint64(0x4000000000000000) // one C-square of the top edge only
	empty := top.cornersEmpty
	wings, cMoves := wingsAndCMoves(own, empty)
	assert.Equal(t, int32(0), wings)
	assert.Equal(t, int32(1), cMoves)
}

func TestEvalNormalIsAntiSymmetricUnderSwap(t *testing.T) {
	b := bitboard.NewInitialBoard()
	swapped := b.Swap()
	assert.Equal(t, EvalNormal(b), -EvalNormal(swapped))
}

func TestEvaluateDispatchesToEachID(t *testing.T) {
	b := bitboard.NewInitialBoard()
	assert.Equal(t, EvalNormal(b), Evaluate(Normal, b))
	assert.Equal(t, EvalPerfect(b), Evaluate(Perfect, b))
	assert.Equal(t, EvalWin(b), Evaluate(Win, b))
	assert.Equal(t, EvalByPointTable(b), Evaluate(PointTable, b))
}

func TestEvaluateInvalidIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		Evaluate(ID(99), bitboard.NewInitialBoard())
	})
}
