package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/reversigo/internal/bitboard"
)

func TestSquareNotationRoundTrip(t *testing.T) {
	for col := byte('A'); col <= 'H'; col++ {
		for row := byte('1'); row <= '8'; row++ {
			sq := bitboard.SquareFromNotation(col, row)
			notation := squareToNotation(sq)

			got, err := parseSquare(notation)
			require.NoError(t, err)
			assert.Equal(t, sq, got)
		}
	}
}

func TestParseSquarePass(t *testing.T) {
	got, err := parseSquare("pass")
	require.NoError(t, err)
	assert.Equal(t, bitboard.PassSquare, got)
	assert.Equal(t, "PASS", squareToNotation(bitboard.PassSquare))
}

func TestParseSquareMalformed(t *testing.T) {
	_, err := parseSquare("Z9")
	assert.Error(t, err)
}

func TestParseSide(t *testing.T) {
	b, err := parseSide("black")
	require.NoError(t, err)
	assert.Equal(t, bitboard.Black, b)

	w, err := parseSide("WHITE")
	require.NoError(t, err)
	assert.Equal(t, bitboard.White, w)

	_, err = parseSide("RED")
	assert.Error(t, err)
}
