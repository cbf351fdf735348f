// Package game is the player state machine. It owns the current
// (player, market) snapshot pair and exposes the gameplay transitions:
// start, transact, travel, pay debt, search, loan, event response, retire.
// Every transition computes a fresh snapshot from a clone and swaps it in
// atomically; malformed or unaffordable requests are silent no-ops.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hustleworks/nashville-hustle/pkg/challenge"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
	"github.com/hustleworks/nashville-hustle/pkg/event"
	"github.com/hustleworks/nashville-hustle/pkg/market"
	"github.com/hustleworks/nashville-hustle/pkg/state"
)

// Status is the lifecycle of one play-through.
type Status int

const (
	StatusIntro Status = iota
	StatusCharacterSelection
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIntro:
		return "intro"
	case StatusCharacterSelection:
		return "character_selection"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	}
	return "unknown"
}

// LogLimit caps the rolling event log, most recent first.
const LogLimit = 10

// EventChance is the per-travel probability that a random event fires.
const EventChance = 0.33

// Result reports what a transition did for the presentation layer: new log
// lines (oldest first), feedback cues, a triggered event to display, the
// one-time loan offer flag, and a particle burst size for big profits.
// A zero Result means the request was ignored.
type Result struct {
	Logs      []string
	Cues      []cue.Cue
	Event     *event.Event
	LoanOffer bool
	Particles int
}

// Game owns the live snapshot pair for one session. It is not safe for
// concurrent use; the game is single-threaded by design.
type Game struct {
	logger     *slog.Logger
	rng        *rand.Rand
	markets    *market.Generator
	challenges *challenge.Generator

	status  Status
	player  *state.Player
	prices  market.Data
	pending *event.Event
	log     []string
}

// New creates a session waiting at character selection. A nil logger falls
// back to slog.Default; a nil rng gets a time-seeded source.
func New(logger *slog.Logger, rng *rand.Rand) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		logger:     logger,
		rng:        rng,
		markets:    market.NewGenerator(rng),
		challenges: challenge.NewGenerator(rng),
		status:     StatusCharacterSelection,
	}
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// State returns a copy of the current player snapshot, or nil before the
// game has started. Callers may inspect it freely without affecting play.
func (g *Game) State() *state.Player {
	if g.player == nil {
		return nil
	}
	return g.player.Clone()
}

// Market returns the current price table.
func (g *Game) Market() market.Data {
	return g.prices
}

// PendingEvent returns the event awaiting a player choice, if any.
func (g *Game) PendingEvent() *event.Event {
	return g.pending
}

// Log returns the rolling event log, most recent first.
func (g *Game) Log() []string {
	out := make([]string, len(g.log))
	copy(out, g.log)
	return out
}

// Score is the run's final figure: net worth (cash minus remaining debt).
func (g *Game) Score() int {
	if g.player == nil {
		return 0
	}
	return g.player.Cash - g.player.Debt
}

// appendLog prepends a line to the rolling log and records it on the result.
func (g *Game) appendLog(res *Result, line string) {
	g.log = append([]string{line}, g.log...)
	if len(g.log) > LogLimit {
		g.log = g.log[:LogLimit]
	}
	res.Logs = append(res.Logs, line)
}

func (g *Game) addCue(res *Result, c cue.Cue) {
	if c != cue.None {
		res.Cues = append(res.Cues, c)
	}
}

// commit swaps in the transitioned snapshot.
func (g *Game) commit(p *state.Player) {
	g.player = p
}
