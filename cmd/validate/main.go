package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/hustleworks/nashville-hustle/internal/format"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/market"
)

// validate checks the static domain tables for dangling references and,
// given a day number, prints that day's generated market for eyeballing
// the demand tuning.
//
// Usage: validate [day] [location]
func main() {
	if err := catalog.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Catalog validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Catalog tables are valid!")

	if len(os.Args) < 2 {
		return
	}

	day, err := strconv.Atoi(os.Args[1])
	if err != nil || day < 1 || day > catalog.GameDurationDays {
		fmt.Fprintf(os.Stderr, "Usage: %s [day 1-%d] [location]\n", os.Args[0], catalog.GameDurationDays)
		os.Exit(1)
	}

	location := catalog.StartingLocation
	if len(os.Args) > 2 {
		location = os.Args[2]
		if _, ok := catalog.LocationByName(location); !ok {
			fmt.Fprintf(os.Stderr, "Unknown location %q\n", location)
			os.Exit(1)
		}
	}

	printMarket(day, location)
}

func printMarket(day int, location string) {
	gen := market.NewGenerator(rand.New(rand.NewSource(int64(day))))
	data := gen.Generate(day)

	if ev, ok := catalog.ActiveSpecialEvent(day); ok {
		fmt.Printf("\nActive event: %s (x%.1f)\n", ev.Name, ev.Multiplier)
	}

	fmt.Printf("\nDay %d market at %s:\n\n", day, location)
	fmt.Printf("%-10s %10s %10s %10s  %s\n", "ITEM", "LOW", "MID", "HIGH", "DEMAND")
	for _, item := range catalog.Items {
		q := data.Quote(location, item.Name)
		fmt.Printf("%-10s %10s %10s %10s  %s\n",
			item.Name,
			format.Currency(q.Low), format.Currency(q.Mid), format.Currency(q.High),
			q.Demand)
	}
}
