// Package challenge generates and tracks the daily challenge: a single
// optional objective, regenerated every day, paying out cash or reputation.
package challenge

import (
	"math"
	"math/rand"

	"github.com/hustleworks/nashville-hustle/pkg/catalog"
)

// ProgressKind tags the gameplay figure being reported to a challenge.
type ProgressKind string

const (
	ProgressSell   ProgressKind = "sell"   // gross sale revenue
	ProgressProfit ProgressKind = "profit" // sale revenue minus base price
	ProgressDebt   ProgressKind = "debt"   // debt payment amount
)

// Challenge is one day's objective. Progress accumulates through Record;
// IsComplete is a one-way latch set when progress crosses the target.
type Challenge struct {
	Kind        catalog.ChallengeKind
	Description string
	Target      int
	Progress    int
	Item        string // PROFIT_FROM only: the bound item name
	Reward      catalog.Reward
	IsComplete  bool
}

// Record reports a gameplay figure against the challenge. Only figures whose
// kind (and item, for PROFIT_FROM) match the challenge accumulate progress.
// Returns true when this call completes the challenge; once complete further
// calls are no-ops, so the reward is applied exactly once.
func (c *Challenge) Record(kind ProgressKind, amount int, item string) bool {
	if c == nil || c.IsComplete {
		return false
	}

	matched := false
	switch {
	case c.Kind == catalog.ChallengeSellValue && kind == ProgressSell:
		matched = true
	case c.Kind == catalog.ChallengeProfitFrom && kind == ProgressProfit && c.Item == item:
		matched = true
	case c.Kind == catalog.ChallengePayDebt && kind == ProgressDebt:
		matched = true
	}
	if !matched {
		return false
	}

	c.Progress += amount
	if c.Progress >= c.Target {
		c.IsComplete = true
		return true
	}
	return false
}

// Generator draws daily challenges from the template pool.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate picks a template uniformly at random and binds its target
// (rounded to the nearest hundred) and, for PROFIT_FROM, a random item from
// one of the template's allowed categories.
func (g *Generator) Generate() *Challenge {
	tpl := catalog.ChallengeTemplates[g.rng.Intn(len(catalog.ChallengeTemplates))]

	span := float64(tpl.TargetMax - tpl.TargetMin)
	target := int(math.Round((g.rng.Float64()*span+float64(tpl.TargetMin))/100)) * 100

	var item string
	if tpl.Kind == catalog.ChallengeProfitFrom {
		category := tpl.Categories[g.rng.Intn(len(tpl.Categories))]
		candidates := catalog.ItemsByCategory(category)
		item = candidates[g.rng.Intn(len(candidates))].Name
	}

	return &Challenge{
		Kind:        tpl.Kind,
		Description: tpl.Describe(target, item),
		Target:      target,
		Item:        item,
		Reward:      tpl.Reward,
	}
}
