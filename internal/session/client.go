// Package session implements the host-side boundary contract described
// in the external interfaces: the line-oriented OPEN/START/MOVE/ACK/END
// /BYE dialog with a match-coordination server. It is a thin shim that
// turns that protocol into calls on the core (bitboard.Place,
// search.Decider.Decide) — no search or board logic lives here.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/frankkopp/reversigo/internal/bitboard"
	"github.com/frankkopp/reversigo/internal/logging"
	"github.com/frankkopp/reversigo/internal/search"
)

// Client holds one connection's worth of session state: the socket,
// our name, the decider used to choose moves, and the live board for
// the game currently in progress.
type Client struct {
	conn    net.Conn
	scanner *bufio.Scanner
	name    string

	decider *search.Decider
	phases  search.PhaseConfig

	board      bitboard.Board
	mySide     bitboard.Side
	leftTimeMs int

	// trace enables dumping history to the search log when a game
	// ends, set from the host's -trace flag.
	trace bool

	// history is cleared on every START; it exists only so a -trace
	// run can dump the game that just ended, never persisted to disk
	// or carried across games.
	history []bitboard.Board
}

// NewClient dials hostport and returns a Client ready to Run. trace
// enables a per-game board-history dump to the search log when the
// server sends END, mirroring the original's debug trace output.
func NewClient(hostport, name string, decider *search.Decider, phases search.PhaseConfig, trace bool) (*Client, error) {
	conn, err := net.Dial("tcp", hostport)
	if err != nil {
		return nil, fmt.Errorf("session: dial %s: %w", hostport, err)
	}
	return &Client{
		conn:    conn,
		scanner: bufio.NewScanner(conn),
		name:    name,
		decider: decider,
		phases:  phases,
		trace:   trace,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Run drives the session to completion: it sends OPEN, then loops
// waiting for a game to START, playing it move by move until END, and
// repeats until the server sends BYE or the connection is lost.
func (c *Client) Run() error {
	if err := c.send("OPEN %s", c.name); err != nil {
		return err
	}

	waiting := true
	for {
		if waiting {
			line, err := c.readLine()
			if err != nil {
				return err
			}
			switch {
			case strings.HasPrefix(line, "BYE"):
				return nil
			case strings.HasPrefix(line, "START"):
				if err := c.handleStart(line); err != nil {
					return err
				}
				waiting = false
			default:
				return c.violation("BYE or START", line)
			}
			continue
		}

		if c.board.Side == c.mySide {
			if err := c.playOurTurn(); err != nil {
				if err == errGameEnded {
					c.dumpHistory()
					waiting = true
					continue
				}
				return err
			}
		} else {
			if err := c.playOpponentTurn(); err != nil {
				if err == errGameEnded {
					c.dumpHistory()
					waiting = true
					continue
				}
				return err
			}
		}
	}
}

// dumpHistory logs every board position played so far this game, one
// line per ply, when -trace is enabled. A no-op otherwise.
func (c *Client) dumpHistory() {
	if !c.trace {
		return
	}
	log := logging.GetSearchLog()
	log.Debugf("trace: game ended after %d plies", len(c.history))
	for _, b := range c.history {
		log.Debugf("trace: ply=%d side=%s sideMask=%#016x oppMask=%#016x", b.Ply, b.Side, b.SideMask, b.OppMask)
	}
}

var errGameEnded = errors.New("session: game ended")

func (c *Client) handleStart(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return fmt.Errorf("session: malformed START line %q", line)
	}
	side, err := parseSide(fields[1])
	if err != nil {
		return err
	}
	leftTimeMs, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("session: malformed START time %q", fields[3])
	}
	c.mySide = side
	c.leftTimeMs = leftTimeMs
	c.board = bitboard.NewInitialBoard()
	c.history = c.history[:0]
	return nil
}

func (c *Client) playOurTurn() error {
	sel := search.SelectPhase(c.board.Ply, c.phases)
	decision := c.decider.Decide(c.board, c.leftTimeMs, sel.Evaluator, sel.Depth)
	logging.GetLog().Infof("MOVE %s (score=%d)", squareToNotation(decision.Move), decision.Score)

	if err := c.send("MOVE %s", squareToNotation(decision.Move)); err != nil {
		return err
	}

	line, err := c.readLine()
	if err != nil {
		return err
	}
	switch {
	case strings.HasPrefix(line, "END"):
		return errGameEnded
	case strings.HasPrefix(line, "ACK"):
		fields := strings.Fields(line)
		if len(fields) == 2 {
			if ms, err := strconv.Atoi(fields[1]); err == nil {
				c.leftTimeMs = ms
			}
		}
		c.commit(decision.Move)
		return nil
	default:
		return c.violation("ACK or END", line)
	}
}

func (c *Client) playOpponentTurn() error {
	line, err := c.readLine()
	if err != nil {
		return err
	}
	switch {
	case strings.HasPrefix(line, "MOVE"):
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("session: malformed MOVE line %q", line)
		}
		sq, err := parseSquare(fields[1])
		if err != nil {
			return err
		}
		c.commit(sq)
		return nil
	case strings.HasPrefix(line, "END"):
		return errGameEnded
	default:
		return c.violation("MOVE or END", line)
	}
}

// commit applies sq to the live board and swaps sides. PLACE_ERR and
// GAME_SET are not treated specially here: the server is the authority
// on whether a game has ended or a move was illegal, so the session
// simply keeps playing until it next sees END.
func (c *Client) commit(sq bitboard.Square) {
	c.history = append(c.history, c.board)
	bitboard.Place(&c.board, sq)
	c.board = c.board.Swap()
}

func (c *Client) send(format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	_, err := fmt.Fprintf(c.conn, "%s\n", msg)
	if err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}

func (c *Client) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("session: read: %w", err)
		}
		return "", fmt.Errorf("session: connection closed")
	}
	return c.scanner.Text(), nil
}

// violation surfaces an unexpected protocol line as a fatal error for
// the caller to act on, per the error handling design's treatment of
// protocol violations: the session does not retry or guess.
func (c *Client) violation(expected, got string) error {
	return fmt.Errorf("session: protocol violation: expected %s, got %q", expected, got)
}
