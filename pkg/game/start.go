package game

import (
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/state"
)

// StartGame begins a run with the chosen background: fresh day-1 snapshot,
// a daily challenge, and the day-1 market table. No-op unless the session
// is at character selection.
func (g *Game) StartGame(class catalog.CharacterClass) Result {
	var res Result
	if g.status != StatusCharacterSelection {
		return res
	}

	p := state.New(class)
	p.ActiveChallenge = g.challenges.Generate()

	g.commit(p)
	g.prices = g.markets.Generate(1)
	g.pending = nil
	g.status = StatusPlaying

	g.appendLog(&res, "Started your hustle. Pay back the shark in 30 days.")
	g.logger.Info("game started",
		"session", p.ID,
		"character", class.Name,
		"cash", p.Cash,
		"debt", p.Debt)
	return res
}

// Retire ends the run voluntarily. Only allowed while playing with the debt
// fully paid off.
func (g *Game) Retire() Result {
	var res Result
	if g.status != StatusPlaying || g.player.Debt > 0 {
		return res
	}
	g.status = StatusGameOver
	g.logger.Info("retired", "session", g.player.ID, "day", g.player.Day, "score", g.Score())
	return res
}
