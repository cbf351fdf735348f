// Package market synthesizes the daily price and demand table. Each day's
// table is derived only from the day number and the random source; there is
// no price memory between days.
package market

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/hustleworks/nashville-hustle/pkg/catalog"
)

// DemandLevel summarizes a continuous demand score for display and sorting.
// Values are ordered so higher demand compares greater.
type DemandLevel int

const (
	DemandCrash DemandLevel = iota
	DemandLow
	DemandMedium
	DemandHigh
	DemandVeryHigh
)

func (d DemandLevel) String() string {
	switch d {
	case DemandCrash:
		return "CRASH"
	case DemandLow:
		return "LOW"
	case DemandMedium:
		return "MEDIUM"
	case DemandHigh:
		return "HIGH"
	case DemandVeryHigh:
		return "VERY_HIGH"
	}
	return "UNKNOWN"
}

// Quote is one item's offer at one location for one day.
type Quote struct {
	Low    int
	Mid    int
	High   int
	Demand DemandLevel
	Reason string
}

// Price returns the quoted price for a quality grade.
func (q Quote) Price(grade catalog.Quality) int {
	switch grade {
	case catalog.QualityLow:
		return q.Low
	case catalog.QualityMid:
		return q.Mid
	case catalog.QualityHigh:
		return q.High
	}
	return 0
}

// Data is the full market table: location -> item -> quote.
type Data map[string]map[string]Quote

// Quote looks up a single offer. The zero Quote is returned for unknown
// location/item pairs.
func (d Data) Quote(location, item string) Quote {
	return d[location][item]
}

// Generator builds daily market tables from a random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

const stableReason = "The market is stable."

// Generate builds the complete price/demand table for the given day.
// Demand per (location, item): a skewed random fluctuation, then the
// day-of-week bias, then the location bias, then any scheduled special
// event. Reasons do not stack; each later rule overwrites the earlier one.
func (g *Generator) Generate(day int) Data {
	dayOfWeek := (day - 1) % 7
	activeEvent, hasEvent := catalog.ActiveSpecialEvent(day)

	data := make(Data, len(catalog.Locations))
	for _, location := range catalog.Locations {
		quotes := make(map[string]Quote, len(catalog.Items))
		for _, item := range catalog.Items {
			score := 1.0
			reason := stableReason

			// Fluctuation, biased slightly positive: roughly [-0.32, +0.48].
			score *= 1 + (g.rng.Float64()-0.4)*0.8

			if containsCategory(catalog.DayOfWeekDemand[dayOfWeek], item.Category) {
				score *= 1.3
				reason = fmt.Sprintf("It's a popular day for %ss.", lower(item.Category))
			}
			if mult, ok := catalog.LocationDemand[location.Name][item.Category]; ok {
				score *= mult
				reason = fmt.Sprintf("%ss are always hot in %s.", item.Category, location.Name)
			}
			if hasEvent && containsCategory(activeEvent.Categories, item.Category) {
				score *= activeEvent.Multiplier
				reason = activeEvent.Reason
			}

			base := float64(item.BasePrice) * score
			quotes[item.Name] = Quote{
				Low:    priceAt(base, 0.6),
				Mid:    priceAt(base, 1.0),
				High:   priceAt(base, 1.5),
				Demand: LevelFor(score),
				Reason: reason,
			}
		}
		data[location.Name] = quotes
	}
	return data
}

// LevelFor maps a demand score to its categorical level. The high-side
// thresholds are checked before the low-side ones; keep this order if the
// ranges are ever retuned.
func LevelFor(score float64) DemandLevel {
	switch {
	case score > 2.5:
		return DemandVeryHigh
	case score > 1.5:
		return DemandHigh
	case score < 0.7:
		return DemandCrash
	case score < 0.9:
		return DemandLow
	default:
		return DemandMedium
	}
}

func priceAt(base, factor float64) int {
	p := int(math.Round(base * factor))
	if p < 1 {
		p = 1
	}
	return p
}

func containsCategory(cats []catalog.Category, c catalog.Category) bool {
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}

func lower(c catalog.Category) string {
	return strings.ToLower(string(c))
}
