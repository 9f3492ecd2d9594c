package search

import "github.com/frankkopp/reversigo/internal/evaluator"

// MaxTurns bounds a standard game: 60 plies are possible after the
// initial 4-disc position.
const MaxTurns = 60

// Phase-selector depth/evaluator bands, configurable via
// internal/config but defaulting to the values below.
const (
	DefaultPerfectDepth = 16
	DefaultWinDepth     = 18
	DefaultNormalDepth  = 8
)

// Selection is the evaluator/depth pair the phase selector chose for
// the current ply.
type Selection struct {
	Evaluator evaluator.ID
	Depth     int
}

// SelectPhase chooses an evaluator and search depth from the plies
// remaining in the game (MaxTurns - ply). Boards with few plies left
// get the exact endgame solver; a middle band gets the cheaper win/loss
// probe; everything else uses the mid-game heuristic.
func SelectPhase(ply int, cfg PhaseConfig) Selection {
	remaining := MaxTurns - ply
	switch {
	case remaining <= cfg.PerfectDepth:
		return Selection{Evaluator: evaluator.Perfect, Depth: cfg.PerfectDepth}
	case remaining <= cfg.WinDepth:
		return Selection{Evaluator: evaluator.Win, Depth: cfg.WinDepth}
	default:
		return Selection{Evaluator: evaluator.Normal, Depth: cfg.NormalDepth}
	}
}

// PhaseConfig holds the tunable depth bands the phase selector and the
// decider's time-pressure fallback consult.
type PhaseConfig struct {
	PerfectDepth int
	WinDepth     int
	NormalDepth  int
}

// DefaultPhaseConfig mirrors the spec's fixed bands.
func DefaultPhaseConfig() PhaseConfig {
	return PhaseConfig{
		PerfectDepth: DefaultPerfectDepth,
		WinDepth:     DefaultWinDepth,
		NormalDepth:  DefaultNormalDepth,
	}
}
