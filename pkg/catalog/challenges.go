package catalog

import (
	"fmt"

	"github.com/hustleworks/nashville-hustle/internal/format"
)

// ChallengeKind identifies what a daily challenge measures.
type ChallengeKind string

const (
	ChallengeSellValue  ChallengeKind = "SELL_VALUE"
	ChallengeProfitFrom ChallengeKind = "PROFIT_FROM"
	ChallengePayDebt    ChallengeKind = "PAY_DEBT"
)

// RewardKind is the currency a challenge pays out in.
type RewardKind string

const (
	RewardCash RewardKind = "cash"
	RewardRep  RewardKind = "rep"
)

// Reward is a challenge payout.
type Reward struct {
	Kind   RewardKind
	Amount int
}

// ChallengeTemplate is the blueprint for one daily challenge. Describe
// renders the player-facing text once target (and, for PROFIT_FROM, item)
// are bound.
type ChallengeTemplate struct {
	Kind       ChallengeKind
	Describe   func(target int, item string) string
	TargetMin  int
	TargetMax  int
	Categories []Category // PROFIT_FROM only: categories the bound item is drawn from
	Reward     Reward
}

// ChallengeTemplates is the fixed pool the daily challenge is drawn from.
var ChallengeTemplates = []ChallengeTemplate{
	{
		Kind: ChallengeSellValue,
		Describe: func(target int, _ string) string {
			return fmt.Sprintf("Sell %s worth of any product today.", format.Currency(target))
		},
		TargetMin: 5000,
		TargetMax: 15000,
		Reward:    Reward{Kind: RewardCash, Amount: 1000},
	},
	{
		Kind: ChallengeProfitFrom,
		Describe: func(target int, item string) string {
			return fmt.Sprintf("Make %s profit from %s sales.", format.Currency(target), item)
		},
		TargetMin:  1000,
		TargetMax:  5000,
		Categories: []Category{CategoryParty, CategoryStimulant, CategoryPsychedelic},
		Reward:     Reward{Kind: RewardRep, Amount: 10},
	},
	{
		Kind: ChallengePayDebt,
		Describe: func(target int, _ string) string {
			return fmt.Sprintf("Pay off %s of your debt today.", format.Currency(target))
		},
		TargetMin: 1000,
		TargetMax: 5000,
		Reward:    Reward{Kind: RewardCash, Amount: 500},
	},
}
