package bitboard

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPositionLegalMoves(t *testing.T) {
	b := NewInitialBoard()
	legal := LegalMoves(b)

	d3 := SquareFromNotation('D', '3')
	c4 := SquareFromNotation('C', '4')
	f5 := SquareFromNotation('F', '5')
	e6 := SquareFromNotation('E', '6')
	want := d3 | c4 | f5 | e6

	assert.Equal(t, want, legal)
	assert.Equal(t, 4, bits.OnesCount64(legal))
}

func TestOpenMoveFlipsBracketedDisc(t *testing.T) {
	b := NewInitialBoard()
	d3 := SquareFromNotation('D', '3')

	status := Place(&b, d3)
	require.Equal(t, Continue, status)

	d4 := SquareFromNotation('D', '4')
	d5 := SquareFromNotation('D', '5')
	e4 := SquareFromNotation('E', '4')
	e5 := SquareFromNotation('E', '5')

	assert.Equal(t, d3|d4|d5|e4, b.SideMask)
	assert.Equal(t, e5, b.OppMask)
	assert.Equal(t, 2, b.Ply)
}

func TestForcedPass(t *testing.T) {
	// A side disc on B1 next to an opponent corner disc on A1 has no
	// bracketing run in any direction, so it has no legal move; the
	// opponent can still play C1 (A1-B1-C1), so the game goes on.
	b := Board{
		SideMask: SquareFromNotation('B', '1'),
		OppMask:  SquareFromNotation('A', '1'),
		Side:     Black,
		Ply:      1,
	}
	require.Equal(t, uint64(0), LegalMoves(b))

	status := Place(&b, PassSquare)
	assert.Equal(t, Continue, status)

	status = Place(&b, SquareFromNotation('D', '3'))
	assert.Equal(t, PlaceErr, status)
}

func TestDoublePassEndsGame(t *testing.T) {
	// A board with no empty squares has no legal move for either side.
	b := Board{
		SideMask: 0xffffffff00000000,
		OppMask:  0x00000000ffffffff,
		Side:     Black,
		Ply:      61,
	}
	require.Equal(t, uint64(0), LegalMoves(b))

	status := Place(&b, PassSquare)
	assert.Equal(t, GameSet, status)
}

func TestInvariantNoDoubleOccupancy(t *testing.T) {
	b := NewInitialBoard()
	for _, sq := range []Square{SquareFromNotation('D', '3'), SquareFromNotation('C', '3'), SquareFromNotation('C', '5')} {
		if LegalMoves(b)&sq == 0 {
			continue
		}
		before := bits.OnesCount64(b.Occupied())
		status := Place(&b, sq)
		require.NotEqual(t, PlaceErr, status)
		assert.Equal(t, uint64(0), b.SideMask&b.OppMask)
		assert.Equal(t, before+1, bits.OnesCount64(b.Occupied()))
		b = b.Swap()
	}
}
