// Package state holds the player snapshot and its inventory arithmetic.
// Snapshots are value-copied by the game engine before every transition, so
// nothing here needs locking.
package state

import (
	"github.com/google/uuid"

	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/challenge"
)

// Lot is the held quantity of one item, split by quality grade.
type Lot struct {
	Low  int
	Mid  int
	High int
}

// Units is the total quantity in the lot.
func (l Lot) Units() int {
	return l.Low + l.Mid + l.High
}

// Get returns the held quantity for a grade.
func (l Lot) Get(grade catalog.Quality) int {
	switch grade {
	case catalog.QualityLow:
		return l.Low
	case catalog.QualityMid:
		return l.Mid
	case catalog.QualityHigh:
		return l.High
	}
	return 0
}

// Add returns the lot with qty more units of the given grade. Negative qty
// removes units.
func (l Lot) Add(grade catalog.Quality, qty int) Lot {
	switch grade {
	case catalog.QualityLow:
		l.Low += qty
	case catalog.QualityMid:
		l.Mid += qty
	case catalog.QualityHigh:
		l.High += qty
	}
	return l
}

// Stats are the monotonic run counters shown on the game-over screen.
type Stats struct {
	TotalDeals    int
	BiggestProfit int
	DaysSurvived  int
	HeatRecord    int
}

// Player is the full player snapshot for one run. It is created by
// game.StartGame and mutated only through the game engine's transitions.
type Player struct {
	ID                 uuid.UUID
	Cash               int
	Debt               int
	Inventory          map[string]Lot
	Location           string
	Day                int
	InterestRate       float64
	HasTakenSecondLoan bool
	Character          catalog.CharacterClass
	Heat               int
	Reputation         map[string]int
	ActiveChallenge    *challenge.Challenge
	Stats              Stats
	SearchesToday      int
}

// New builds the day-1 snapshot for the chosen character class: starting
// cash and debt, zero reputation plus the class deltas, heat clear.
func New(class catalog.CharacterClass) *Player {
	rep := make(map[string]int, len(catalog.FactionNames))
	for _, name := range catalog.FactionNames {
		rep[name] = 0
	}
	for name, delta := range class.InitialRep {
		rep[name] = delta
	}

	return &Player{
		ID:            uuid.New(),
		Cash:          catalog.InitialCash,
		Debt:          catalog.InitialDebt,
		Inventory:     make(map[string]Lot),
		Location:      catalog.StartingLocation,
		Day:           1,
		InterestRate:  catalog.InterestRate,
		Character:     class,
		Reputation:    rep,
		SearchesToday: catalog.SearchesPerDay,
	}
}

// Clone returns a deep copy of the snapshot. Transitions operate on clones
// and the engine swaps the whole snapshot in on success, so a failed
// precondition can never leave a partial update behind.
func (p *Player) Clone() *Player {
	cp := *p

	cp.Inventory = make(map[string]Lot, len(p.Inventory))
	for name, lot := range p.Inventory {
		cp.Inventory[name] = lot
	}

	cp.Reputation = make(map[string]int, len(p.Reputation))
	for name, rep := range p.Reputation {
		cp.Reputation[name] = rep
	}

	if p.ActiveChallenge != nil {
		c := *p.ActiveChallenge
		cp.ActiveChallenge = &c
	}
	return &cp
}

// InventoryUsed is the total units held across all items and grades.
func (p *Player) InventoryUsed() int {
	used := 0
	for _, lot := range p.Inventory {
		used += lot.Units()
	}
	return used
}

// InventorySpace is the remaining capacity under MaxInventory.
func (p *Player) InventorySpace() int {
	return catalog.MaxInventory - p.InventoryUsed()
}

// Held returns the quantity of one item at one grade.
func (p *Player) Held(item string, grade catalog.Quality) int {
	return p.Inventory[item].Get(grade)
}

// AddUnits adjusts the held quantity of an item at a grade. Callers check
// capacity; AddUnits itself enforces nothing (the stash-search item find
// deliberately bypasses the space check).
func (p *Player) AddUnits(item string, grade catalog.Quality, qty int) {
	p.Inventory[item] = p.Inventory[item].Add(grade, qty)
}

// RaiseHeat raises heat by delta, capped at the top of the scale, and keeps
// the heat record current.
func (p *Player) RaiseHeat(delta int) {
	p.Heat += delta
	if top := len(catalog.HeatLevels) - 1; p.Heat > top {
		p.Heat = top
	}
	if p.Heat > p.Stats.HeatRecord {
		p.Stats.HeatRecord = p.Heat
	}
}

// CoolHeat lowers heat by one, floored at zero.
func (p *Player) CoolHeat() {
	if p.Heat > 0 {
		p.Heat--
	}
}

// AddReputation raises standing with one faction, capped at 100.
func (p *Player) AddReputation(faction string, delta int) {
	rep := p.Reputation[faction] + delta
	if rep > 100 {
		rep = 100
	}
	p.Reputation[faction] = rep
}
