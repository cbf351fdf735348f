package catalog

import "fmt"

// Validate cross-checks the static tables: every location, category, faction
// and item referenced by a derived table must exist in its master catalog.
// Called at binary startup and from tests; a failure means the tables were
// edited inconsistently.
func Validate() error {
	categories := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		categories[c] = true
	}

	items := make(map[string]bool, len(Items))
	for _, it := range Items {
		if it.Name == "" {
			return fmt.Errorf("item with empty name")
		}
		if items[it.Name] {
			return fmt.Errorf("duplicate item %q", it.Name)
		}
		if it.BasePrice <= 0 {
			return fmt.Errorf("item %q: base price must be positive, got %d", it.Name, it.BasePrice)
		}
		if !categories[it.Category] {
			return fmt.Errorf("item %q: unknown category %q", it.Name, it.Category)
		}
		items[it.Name] = true
	}

	locations := make(map[string]bool, len(Locations))
	for _, loc := range Locations {
		if locations[loc.Name] {
			return fmt.Errorf("duplicate location %q", loc.Name)
		}
		locations[loc.Name] = true
	}

	factions := make(map[string]bool, len(Factions))
	for _, f := range Factions {
		factions[f.Name] = true
		for _, loc := range f.Locations {
			if !locations[loc] {
				return fmt.Errorf("faction %q: unknown location %q", f.Name, loc)
			}
		}
	}
	for _, name := range FactionNames {
		if !factions[name] {
			return fmt.Errorf("faction name %q has no faction entry", name)
		}
	}

	for _, class := range CharacterClasses {
		for faction := range class.InitialRep {
			if !factions[faction] {
				return fmt.Errorf("class %q: rep delta for unknown faction %q", class.Name, faction)
			}
		}
	}

	for day, cats := range DayOfWeekDemand {
		if day < 0 || day > 6 {
			return fmt.Errorf("day-of-week demand: invalid weekday %d", day)
		}
		for _, c := range cats {
			if !categories[c] {
				return fmt.Errorf("day-of-week demand: unknown category %q", c)
			}
		}
	}

	for loc, biases := range LocationDemand {
		if !locations[loc] {
			return fmt.Errorf("location demand: unknown location %q", loc)
		}
		for c, mult := range biases {
			if !categories[c] {
				return fmt.Errorf("location demand %q: unknown category %q", loc, c)
			}
			if mult <= 0 {
				return fmt.Errorf("location demand %q/%q: multiplier must be positive", loc, c)
			}
		}
	}

	for _, ev := range SpecialEvents {
		if ev.StartDay > ev.EndDay {
			return fmt.Errorf("special event %q: start day %d after end day %d", ev.Name, ev.StartDay, ev.EndDay)
		}
		if ev.Multiplier <= 0 {
			return fmt.Errorf("special event %q: multiplier must be positive", ev.Name)
		}
		for _, c := range ev.Categories {
			if !categories[c] {
				return fmt.Errorf("special event %q: unknown category %q", ev.Name, c)
			}
		}
	}

	for i, tpl := range ChallengeTemplates {
		if tpl.Describe == nil {
			return fmt.Errorf("challenge template %d: missing description", i)
		}
		if tpl.TargetMin <= 0 || tpl.TargetMax < tpl.TargetMin {
			return fmt.Errorf("challenge template %d: bad target range [%d,%d]", i, tpl.TargetMin, tpl.TargetMax)
		}
		for _, c := range tpl.Categories {
			if !categories[c] {
				return fmt.Errorf("challenge template %d: unknown category %q", i, c)
			}
		}
		if tpl.Kind == ChallengeProfitFrom && len(tpl.Categories) == 0 {
			return fmt.Errorf("challenge template %d: PROFIT_FROM needs item categories", i)
		}
	}

	for i, offer := range LoanOffers {
		if offer.Amount <= 0 || offer.Interest <= 0 {
			return fmt.Errorf("loan offer %d: amount and interest must be positive", i)
		}
	}

	return nil
}
