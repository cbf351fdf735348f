package game

import (
	"fmt"

	"github.com/hustleworks/nashville-hustle/internal/format"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/challenge"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
	"github.com/hustleworks/nashville-hustle/pkg/state"
)

// Heat thresholds for large purchases.
const (
	heatCostMinor = 5000  // cost above this raises heat by 1
	heatCostMajor = 10000 // cost above this raises heat by 2
)

// particleProfit is the sale profit above which the UI gets a particle burst.
const particleProfit = 1000

// Transact buys or sells qty units of an item at a quality grade, at the
// current location's quoted price. Unaffordable, oversized or malformed
// requests leave the state untouched.
func (g *Game) Transact(item string, grade catalog.Quality, qty int, buying bool) Result {
	var res Result
	if g.status != StatusPlaying || qty <= 0 {
		return res
	}
	if grade < catalog.QualityLow || grade > catalog.QualityHigh {
		return res
	}
	def, ok := catalog.ItemByName(item)
	if !ok {
		return res
	}

	price := g.prices.Quote(g.player.Location, item).Price(grade)
	total := price * qty

	if buying {
		return g.buy(def, grade, qty, total)
	}
	return g.sell(def, grade, qty, total)
}

func (g *Game) buy(item catalog.Item, grade catalog.Quality, qty, cost int) Result {
	var res Result
	if g.player.Cash < cost || g.player.InventorySpace() < qty {
		return res
	}

	p := g.player.Clone()
	p.Cash -= cost
	p.AddUnits(item.Name, grade, qty)

	switch {
	case cost > heatCostMajor:
		p.RaiseHeat(2)
	case cost > heatCostMinor:
		p.RaiseHeat(1)
	}

	for _, f := range catalog.FactionsAt(p.Location) {
		p.AddReputation(f.Name, 1)
	}

	g.commit(p)
	g.appendLog(&res, fmt.Sprintf("Bought %d %s %s for %s.", qty, grade, item.Name, format.Currency(cost)))
	g.logger.Debug("buy", "item", item.Name, "grade", grade.String(), "qty", qty, "cost", cost, "heat", p.Heat)
	return res
}

func (g *Game) sell(item catalog.Item, grade catalog.Quality, qty, revenue int) Result {
	var res Result
	if g.player.Held(item.Name, grade) < qty {
		return res
	}

	p := g.player.Clone()
	p.AddUnits(item.Name, grade, -qty)
	p.Cash += revenue

	// Profit is measured against base price, not acquisition cost; the
	// price actually paid per unit is not tracked.
	profit := revenue - item.BasePrice*qty
	if profit > p.Stats.BiggestProfit {
		p.Stats.BiggestProfit = profit
	}
	p.Stats.TotalDeals++

	g.recordChallenge(&res, p, challenge.ProgressSell, revenue, item.Name)
	g.recordChallenge(&res, p, challenge.ProgressProfit, profit, item.Name)

	g.commit(p)
	g.appendLog(&res, fmt.Sprintf("Sold %d %s %s for %s.", qty, grade, item.Name, format.Currency(revenue)))
	if profit > particleProfit {
		g.addCue(&res, cue.Cash)
		res.Particles = profit / 1000
		if res.Particles > 5 {
			res.Particles = 5
		}
	}
	g.logger.Debug("sell", "item", item.Name, "grade", grade.String(), "qty", qty, "revenue", revenue, "profit", profit)
	return res
}

// recordChallenge feeds a gameplay figure into the active challenge and, on
// completion, applies the reward to the in-flight snapshot. Completion and
// payout happen in the same transition; a completed-but-unclaimed challenge
// cannot exist.
func (g *Game) recordChallenge(res *Result, p *state.Player, kind challenge.ProgressKind, amount int, item string) {
	c := p.ActiveChallenge
	if !c.Record(kind, amount, item) {
		return
	}

	switch c.Reward.Kind {
	case catalog.RewardCash:
		p.Cash += c.Reward.Amount
		g.appendLog(res, fmt.Sprintf("Challenge complete! Reward: %s", format.Currency(c.Reward.Amount)))
	case catalog.RewardRep:
		for _, name := range catalog.FactionNames {
			p.AddReputation(name, c.Reward.Amount)
		}
		g.appendLog(res, fmt.Sprintf("Challenge complete! +%d rep with all factions.", c.Reward.Amount))
	}
	g.addCue(res, cue.Success)
	g.logger.Info("challenge complete", "kind", c.Kind, "target", c.Target, "reward", c.Reward.Kind)
}
