// Package event defines the random events that can fire when the player
// travels. Each event either applies directly to the player snapshot or
// offers labeled choices; the draw policy (when and how often events fire)
// belongs to the game engine, not here.
package event

import (
	"fmt"
	"math/rand"

	"github.com/hustleworks/nashville-hustle/internal/format"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
	"github.com/hustleworks/nashville-hustle/pkg/state"
)

// Outcome is what a transition reports back: a log line for the rolling
// event log and an optional feedback cue for the presentation layer.
type Outcome struct {
	Log string
	Cue cue.Cue
}

// Transition mutates the player snapshot it is handed. The engine always
// passes a clone, so a transition never touches the live state directly.
type Transition func(p *state.Player, rng *rand.Rand) Outcome

// Action is one player-selectable response to an event.
type Action struct {
	Label string
	Apply Transition
}

// Event is a single random happening. Exactly one of Apply or Actions is
// set: Apply fires immediately on draw, Actions wait for the player's
// choice. MarketEvent flags that the day's market table should be rerolled.
type Event struct {
	Title       string
	Description string
	Apply       Transition
	Actions     []Action
	MarketEvent bool
}

const (
	bulkOfferItem  = "Ketamine"
	bulkOfferUnits = 20
	bulkOfferPrice = 12000
)

// Catalog returns the events eligible on this travel. The set is currently
// fixed regardless of player state.
func Catalog(_ *state.Player) []Event {
	return []Event{
		{
			Title:       "Found Lost Wallet",
			Description: "You found a wallet stuffed with cash in an alley. Your lucky day!",
			Apply: func(p *state.Player, rng *rand.Rand) Outcome {
				amount := rng.Intn(501) + 200
				p.Cash += amount
				return Outcome{Log: fmt.Sprintf("Lucky find! You pocketed %s.", format.Currency(amount))}
			},
		},
		{
			Title:       "Rival Bust",
			Description: "You hear chatter that a rival crew got busted, leaving a gap in the market.",
			MarketEvent: true,
			Apply: func(p *state.Player, rng *rand.Rand) Outcome {
				return Outcome{Log: "A rival's misfortune is your opportunity. Prices are up today!"}
			},
		},
		{
			Title: "Jelly's Bulk Offer",
			Description: fmt.Sprintf(
				"Your connect, Jelly, has a line on %d units of mid-quality %s. He's asking %s. It's a steal, but you gotta have the cash and space.",
				bulkOfferUnits, bulkOfferItem, format.Currency(bulkOfferPrice)),
			Actions: []Action{
				{
					Label: "Take the deal",
					Apply: func(p *state.Player, rng *rand.Rand) Outcome {
						if p.Cash < bulkOfferPrice {
							return Outcome{Log: "You wanted the deal, but your wallet was too light."}
						}
						if p.InventorySpace() < bulkOfferUnits {
							return Outcome{Log: "You wanted the deal, but had no space."}
						}
						p.Cash -= bulkOfferPrice
						p.AddUnits(bulkOfferItem, catalog.QualityMid, bulkOfferUnits)
						return Outcome{Log: fmt.Sprintf("Deal made! You loaded up on %d units of %s.", bulkOfferUnits, bulkOfferItem)}
					},
				},
				{
					Label: "Too rich for my blood",
					Apply: func(p *state.Player, rng *rand.Rand) Outcome {
						return Outcome{Log: "You told Jelly you'd have to pass."}
					},
				},
			},
		},
		{
			Title:       "Titans Tailgate Bust!",
			Description: "Metro PD is cracking down on pre-game festivities. You have to dump your stuff to avoid getting busted.",
			Apply: func(p *state.Player, rng *rand.Rand) Outcome {
				if p.InventoryUsed() == 0 {
					return Outcome{Log: "Cops swarmed the tailgate, but your pockets were empty.", Cue: cue.Siren}
				}
				p.Inventory = make(map[string]state.Lot)
				p.CoolHeat()
				return Outcome{Log: "You dumped your entire stash to avoid the cops. Heat decreased.", Cue: cue.Siren}
			},
		},
	}
}
