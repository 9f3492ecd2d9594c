package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/config"
	"github.com/frankkopp/reversigo/internal/evaluator"
	"github.com/frankkopp/reversigo/internal/logging"
)

// DefaultTimePressureThresholdMs is the remaining-clock threshold below
// which the decider abandons an endgame search in favor of a cheap
// fallback, used when config.Settings.Search.TimePressureThresholdMs is
// unset (zero).
const DefaultTimePressureThresholdMs = 10000

// DefaultTimePressureFallbackDepth is the depth the decider falls back
// to. Preserved exactly as the original algorithm hard-codes it,
// regardless of which phase triggered the fallback — this is an
// explicit design decision carried over unchanged, not a value to
// "improve." Used when config.Settings.Search.TimePressureFallbackDepth
// is unset (zero).
const DefaultTimePressureFallbackDepth = 10

// DefaultRootWorkerLimit bounds concurrent root workers when
// config.Settings.Search.RootWorkerLimit is unset (zero); a legal root
// move count never exceeds this in practice (see spec §5).
const DefaultRootWorkerLimit = 32

// workerResult is what each root worker reports back on its own
// single-producer channel.
type workerResult struct {
	move  bitboard.Square
	score int32
}

// Decider runs the root-parallel search. A single Decider is not meant
// to be shared across concurrent Decide calls from different boards;
// decideSem only protects against this instance being re-entered
// while a previous call is still fanning out, mirroring how the
// teacher's Search type gates re-entrant StartSearch calls.
type Decider struct {
	phases    PhaseConfig
	decideSem *semaphore.Weighted

	// workerSem bounds the number of root workers running negamax
	// concurrently, sized from config.Settings.Search.RootWorkerLimit.
	workerSem *semaphore.Weighted

	timePressureThresholdMs   int
	timePressureFallbackDepth int
}

// NewDecider builds a Decider using the given phase/depth configuration.
// It reads config.Settings.Search for the time-pressure threshold,
// fallback depth and root-worker limit, falling back to this package's
// Default* constants for any field left at its zero value (e.g. when
// config.Setup has not been called).
func NewDecider(phases PhaseConfig) *Decider {
	threshold := config.Settings.Search.TimePressureThresholdMs
	if threshold == 0 {
		threshold = DefaultTimePressureThresholdMs
	}
	fallbackDepth := config.Settings.Search.TimePressureFallbackDepth
	if fallbackDepth == 0 {
		fallbackDepth = DefaultTimePressureFallbackDepth
	}
	workerLimit := config.Settings.Search.RootWorkerLimit
	if workerLimit <= 0 {
		workerLimit = DefaultRootWorkerLimit
	}
	return &Decider{
		phases:                    phases,
		decideSem:                 semaphore.NewWeighted(1),
		workerSem:                 semaphore.NewWeighted(int64(workerLimit)),
		timePressureThresholdMs:   threshold,
		timePressureFallbackDepth: fallbackDepth,
	}
}

// Outlook summarizes, for EVAL_WIN/EVAL_PERFECT decisions, what the
// decider believes the eventual game outcome will be — purely
// informational, for the host to log.
type Outlook int

const (
	OutlookUnknown Outlook = iota
	OutlookWin
	OutlookDraw
	OutlookLoss
)

// Decision is the result of one Decide call.
type Decision struct {
	Move    bitboard.Square
	Score   int32
	Outlook Outlook
}

// Decide chooses a move for the side to move on b, given remainingMs
// wall-clock milliseconds left on the game clock, using id/depth as the
// evaluator and search depth. It spawns one worker per legal root move,
// collects scores by round-robin polling, and returns early on a proven
// win (evaluator == Win and a worker reports score == 1) or on a
// time-pressure fallback (see decideWithFallback).
func (d *Decider) Decide(b bitboard.Board, remainingMs int, id evaluator.ID, depth int) Decision {
	_ = d.decideSem.Acquire(context.Background(), 1)
	defer d.decideSem.Release(1)
	return d.decide(b, remainingMs, id, depth)
}

// decide is Decide's body, factored out so the time-pressure fallback can
// recurse without re-acquiring decideSem — it already holds it, and the
// semaphore is not reentrant.
func (d *Decider) decide(b bitboard.Board, remainingMs int, id evaluator.ID, depth int) Decision {
	legal := bitboard.LegalMoves(b)
	if legal == 0 {
		return Decision{Move: bitboard.PassSquare}
	}

	moves := legalMoveSquares(legal)
	if len(moves) == 1 {
		return Decision{Move: moves[0]}
	}

	log := logging.GetSearchLog()
	log.Debugf("decide: ply=%d evaluator=%s depth=%d remainingMs=%d candidates=%d", b.Ply, id, depth, remainingMs, len(moves))

	start := time.Now()
	channels := make([]chan workerResult, len(moves))
	for i, m := range moves {
		channels[i] = make(chan workerResult, 1)
		go runRootWorker(channels[i], d.workerSem, b, m, id, depth)
	}

	pending := make([]bool, len(moves))
	for i := range pending {
		pending[i] = true
	}
	remaining := len(moves)

	best := Decision{Move: moves[0], Score: int32(MinWindow)}
	havePhaseBand := id == evaluator.Win || id == evaluator.Perfect

	for remaining > 0 {
		progressed := false
		for i, ch := range channels {
			if !pending[i] {
				continue
			}
			select {
			case res := <-ch:
				pending[i] = false
				remaining--
				progressed = true
				log.Debugf("decide: worker move=%#x score=%d", res.move, res.score)
				if id == evaluator.Win && res.score == 1 {
					log.Debugf("decide: win shortcut on move=%#x", res.move)
					return Decision{Move: res.move, Score: res.score, Outlook: OutlookWin}
				}
				if res.score > best.Score {
					best = Decision{Move: res.move, Score: res.score}
				}
			default:
			}
		}

		elapsedMs := int(time.Since(start) / time.Millisecond)
		if havePhaseBand && remainingMs-elapsedMs < d.timePressureThresholdMs {
			remainingFromEnd := MaxTurns - b.Ply
			if d.phases.PerfectDepth <= remainingFromEnd && remainingFromEnd <= d.phases.WinDepth {
				log.Debugf("decide: time pressure fallback at ply=%d remainingMs=%d elapsedMs=%d", b.Ply, remainingMs, elapsedMs)
				return d.decideWithFallback(b, remainingMs-elapsedMs)
			}
		}

		if !progressed {
			time.Sleep(time.Millisecond)
		}
	}

	best.Outlook = outlookFor(id, best.Score)
	return best
}

// decideWithFallback recurses into decide with EVAL_NORMAL at a fixed
// shallow depth, abandoning the in-flight endgame search. Outstanding
// root workers from the abandoned search keep running to completion;
// their sends land in buffered, now-unread channels and are simply
// never received — not an error, per the cancellation semantics of a
// root-parallel search under this design.
func (d *Decider) decideWithFallback(b bitboard.Board, remainingMs int) Decision {
	return d.decide(b, remainingMs, evaluator.Normal, d.timePressureFallbackDepth)
}

// runRootWorker applies move at the root, then blocks on sem until a
// worker slot is free (bounding concurrent negamax execution to
// config.Settings.Search.RootWorkerLimit) before searching.
func runRootWorker(out chan<- workerResult, sem *semaphore.Weighted, b bitboard.Board, move bitboard.Square, id evaluator.ID, depth int) {
	child := b
	bitboard.Place(&child, move)
	child = child.Swap()

	_ = sem.Acquire(context.Background(), 1)
	score := -Negamax(int32(MinWindow), int32(MaxWindow), depth-1, child, id)
	sem.Release(1)

	// The send below never blocks because the channel is created with
	// capacity 1 and has exactly one producer; if Decide has already
	// returned, nothing ever reads it and the goroutine exits normally.
	out <- workerResult{move: move, score: score}
}

func outlookFor(id evaluator.ID, score int32) Outlook {
	if id != evaluator.Win && id != evaluator.Perfect {
		return OutlookUnknown
	}
	switch {
	case score > 0:
		return OutlookWin
	case score < 0:
		return OutlookLoss
	default:
		return OutlookDraw
	}
}
