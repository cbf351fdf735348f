package game

import (
	"fmt"

	"github.com/hustleworks/nashville-hustle/internal/format"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/challenge"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
)

// PayDebt pays min(cash, debt) toward the loan. Clearing the debt for the
// first time raises the one-time second-loan offer flag for the
// presentation layer.
func (g *Game) PayDebt() Result {
	var res Result
	if g.status != StatusPlaying {
		return res
	}

	payment := g.player.Cash
	if g.player.Debt < payment {
		payment = g.player.Debt
	}
	if payment <= 0 {
		return res
	}

	p := g.player.Clone()
	p.Cash -= payment
	p.Debt -= payment

	g.recordChallenge(&res, p, challenge.ProgressDebt, payment, "")

	g.commit(p)
	g.appendLog(&res, fmt.Sprintf("Paid %s to the loan shark.", format.Currency(payment)))
	if p.Debt <= 0 {
		if !p.HasTakenSecondLoan {
			res.LoanOffer = true
			g.appendLog(&res, "You've paid off your debt! The loan shark is impressed...")
		} else {
			g.appendLog(&res, "You've paid off your debt!")
		}
	}
	g.logger.Debug("pay debt", "payment", payment, "debt", p.Debt)
	return res
}

// TakeLoan accepts one of the catalog loan offers: cash and debt both grow
// by the amount and the offer's rate replaces the interest rate. Available
// once, only after the first debt is cleared.
func (g *Game) TakeLoan(offerIndex int) Result {
	var res Result
	if g.status != StatusPlaying || g.player.HasTakenSecondLoan || g.player.Debt > 0 {
		return res
	}
	if offerIndex < 0 || offerIndex >= len(catalog.LoanOffers) {
		return res
	}

	offer := catalog.LoanOffers[offerIndex]
	p := g.player.Clone()
	p.Cash += offer.Amount
	p.Debt += offer.Amount
	p.InterestRate = offer.Interest
	p.HasTakenSecondLoan = true

	g.commit(p)
	g.appendLog(&res, fmt.Sprintf("Took a new loan: %s at %.0f%% interest. Don't be late.",
		format.Currency(offer.Amount), offer.Interest*100))
	g.addCue(&res, cue.Cash)
	g.logger.Info("loan taken", "amount", offer.Amount, "interest", offer.Interest)
	return res
}

// Stash-search probability ladder.
const (
	searchCashChance = 0.2
	searchItemChance = 0.3
	searchHeatChance = 0.4
)

// SearchStash spends one of today's searches on a random outcome: found
// cash, found product, attracted heat, or nothing. The item find does not
// check inventory space; that looseness is part of the game's balance.
func (g *Game) SearchStash() Result {
	var res Result
	if g.status != StatusPlaying || g.player.SearchesToday <= 0 {
		return res
	}

	p := g.player.Clone()
	p.SearchesToday--
	g.addCue(&res, cue.Click)

	roll := g.rng.Float64()
	switch {
	case roll < searchCashChance:
		amount := g.rng.Intn(401) + 100
		p.Cash += amount
		g.appendLog(&res, fmt.Sprintf("Your search paid off! You found %s.", format.Currency(amount)))
	case roll < searchItemChance:
		item := catalog.Items[g.rng.Intn(len(catalog.Items))]
		grade := catalog.Qualities[g.rng.Intn(len(catalog.Qualities))]
		qty := g.rng.Intn(2) + 1
		p.AddUnits(item.Name, grade, qty)
		g.appendLog(&res, fmt.Sprintf("Jackpot! You found %d unit(s) of %s %s.", qty, grade, item.Name))
	case roll < searchHeatChance:
		p.RaiseHeat(1)
		g.appendLog(&res, "Your searching looked suspicious. Heat increased.")
	default:
		g.appendLog(&res, "You searched the area but found nothing.")
	}

	g.commit(p)
	g.logger.Debug("search", "remaining", p.SearchesToday)
	return res
}
