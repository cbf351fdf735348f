package game

import (
	"fmt"
	"math"

	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/event"
)

// Travel moves to a new location and advances the day: interest compounds
// once, heat cools by one, searches reset, a fresh challenge and market are
// generated, then the random-event draw runs against the advanced state.
// Traveling on the final day ends the game instead.
func (g *Game) Travel(location string) Result {
	var res Result
	if g.status != StatusPlaying || g.pending != nil {
		return res
	}
	if _, ok := catalog.LocationByName(location); !ok {
		return res
	}

	if g.player.Day >= catalog.GameDurationDays {
		g.status = StatusGameOver
		g.logger.Info("game over", "session", g.player.ID, "score", g.Score())
		return res
	}

	p := g.player.Clone()
	p.Day++
	p.Location = location
	p.Debt = int(math.Round(float64(p.Debt) * (1 + p.InterestRate)))
	p.CoolHeat()
	p.SearchesToday = catalog.SearchesPerDay
	p.ActiveChallenge = g.challenges.Generate()
	p.Stats.DaysSurvived = p.Day - 1

	g.appendLog(&res, fmt.Sprintf("Day %d: Traveled to %s. Interest added to debt.", p.Day, location))

	prices := g.markets.Generate(p.Day)

	if g.rng.Float64() < EventChance {
		events := event.Catalog(p)
		ev := events[g.rng.Intn(len(events))]
		res.Event = &ev

		if ev.MarketEvent {
			// The event's reroll supersedes the day's baseline table.
			prices = g.markets.Generate(p.Day)
		}
		if ev.Apply != nil && len(ev.Actions) == 0 {
			out := ev.Apply(p, g.rng)
			g.appendLog(&res, out.Log)
			g.addCue(&res, out.Cue)
		} else if len(ev.Actions) > 0 {
			g.pending = &ev
		}
		g.logger.Info("event triggered", "title", ev.Title, "day", p.Day)
	}

	g.commit(p)
	g.prices = prices
	g.logger.Debug("travel", "day", p.Day, "location", location, "debt", p.Debt)
	return res
}

// RespondToEvent applies the chosen action of the pending event. No-op when
// nothing is pending or the index is out of range.
func (g *Game) RespondToEvent(actionIndex int) Result {
	var res Result
	if g.status != StatusPlaying || g.pending == nil {
		return res
	}
	if actionIndex < 0 || actionIndex >= len(g.pending.Actions) {
		return res
	}

	action := g.pending.Actions[actionIndex]
	p := g.player.Clone()
	out := action.Apply(p, g.rng)

	g.pending = nil
	g.commit(p)
	g.appendLog(&res, out.Log)
	g.addCue(&res, out.Cue)
	g.logger.Info("event response", "action", action.Label)
	return res
}
