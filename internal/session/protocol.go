package session

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/frankkopp/reversigo/internal/bitboard"
)

// squareToNotation renders a single-square mask as algebraic notation
// ("D3"), or "PASS" for the pass sentinel.
func squareToNotation(sq bitboard.Square) string {
	if sq == bitboard.PassSquare {
		return "PASS"
	}
	shift := bits.LeadingZeros64(sq)
	col := byte('A' + shift%8)
	row := byte('1' + shift/8)
	return string([]byte{col, row})
}

// parseSquare parses algebraic notation or "PASS" into a single-square
// mask. A malformed token is a protocol violation, reported to the
// caller rather than crashing the session.
func parseSquare(tok string) (bitboard.Square, error) {
	tok = strings.ToUpper(strings.TrimSpace(tok))
	if tok == "PASS" {
		return bitboard.PassSquare, nil
	}
	if len(tok) != 2 {
		return 0, fmt.Errorf("session: malformed square notation %q", tok)
	}
	col, row := tok[0], tok[1]
	if col < 'A' || col > 'H' || row < '1' || row > '8' {
		return 0, fmt.Errorf("session: malformed square notation %q", tok)
	}
	return bitboard.SquareFromNotation(col, row), nil
}

func parseSide(tok string) (bitboard.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(tok)) {
	case "BLACK":
		return bitboard.Black, nil
	case "WHITE":
		return bitboard.White, nil
	default:
		return 0, fmt.Errorf("session: malformed color %q", tok)
	}
}
