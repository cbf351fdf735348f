// Package catalog holds the static domain tables for the game: the product,
// location, faction and character catalogs, the demand-bias tables and the
// scheduled special events. Everything here is fixed at load time; runtime
// state lives in pkg/state.
package catalog

// Gameplay constants.
const (
	InitialCash      = 2000
	InitialDebt      = 2000
	GameDurationDays = 30
	MaxInventory     = 100
	InterestRate     = 0.1
	SearchesPerDay   = 3
	StartingLocation = "Downtown"
)

// Category classifies a product for demand purposes.
type Category string

const (
	CategoryParty       Category = "Party"
	CategoryStimulant   Category = "Stimulant"
	CategoryPsychedelic Category = "Psychedelic"
	CategoryDepressant  Category = "Depressant"
	CategoryStreet      Category = "Street"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryParty,
	CategoryStimulant,
	CategoryPsychedelic,
	CategoryDepressant,
	CategoryStreet,
}

// Quality is the grade of a held or quoted unit.
type Quality int

const (
	QualityLow Quality = iota
	QualityMid
	QualityHigh
)

// Qualities lists every grade, lowest first.
var Qualities = []Quality{QualityLow, QualityMid, QualityHigh}

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMid:
		return "mid"
	case QualityHigh:
		return "high"
	}
	return "unknown"
}

// Item is a tradeable product.
type Item struct {
	Name      string
	BasePrice int
	Category  Category
}

// Location is a neighborhood the player can work.
type Location struct {
	Name        string
	Description string
}

// Faction is a group whose reputation the player can build. Transacting in
// one of its locations raises standing with it.
type Faction struct {
	Name      string
	Locations []string
}

// CharacterClass is a starting background. Only InitialRep is consumed by
// game logic; Perk is flavor text shown to the player.
type CharacterClass struct {
	Name        string
	Description string
	Perk        string
	InitialRep  map[string]int
}

// HeatLevel describes one step of the 0-5 law-enforcement attention scale.
type HeatLevel struct {
	Level       int
	Description string
}

// SpecialEvent is a scheduled city event that boosts demand for its
// categories while the day falls inside [StartDay, EndDay].
type SpecialEvent struct {
	Name       string
	StartDay   int
	EndDay     int
	Multiplier float64
	Categories []Category
	Reason     string
}

// LoanOffer is a follow-up loan the shark extends after full payoff.
type LoanOffer struct {
	Amount   int
	Interest float64
}

// ItemByName returns the item with the given name, or false if unknown.
func ItemByName(name string) (Item, bool) {
	for _, it := range Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// ItemsByCategory returns every item in the given category.
func ItemsByCategory(c Category) []Item {
	var out []Item
	for _, it := range Items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// LocationByName returns the location with the given name, or false if unknown.
func LocationByName(name string) (Location, bool) {
	for _, loc := range Locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return Location{}, false
}

// FactionsAt returns every faction associated with the given location.
func FactionsAt(location string) []Faction {
	var out []Faction
	for _, f := range Factions {
		for _, loc := range f.Locations {
			if loc == location {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// HeatDescription returns the flavor text for a heat level, clamping out of
// range values to the scale.
func HeatDescription(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(HeatLevels) {
		level = len(HeatLevels) - 1
	}
	return HeatLevels[level].Description
}

// ActiveSpecialEvent returns the scheduled event covering the given day.
// When ranges overlap, the first listed event wins.
func ActiveSpecialEvent(day int) (SpecialEvent, bool) {
	for _, ev := range SpecialEvents {
		if day >= ev.StartDay && day <= ev.EndDay {
			return ev, true
		}
	}
	return SpecialEvent{}, false
}
