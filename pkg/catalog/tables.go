package catalog

// Items is the product catalog, cheapest first.
var Items = []Item{
	{Name: "Ludes", BasePrice: 40, Category: CategoryDepressant},
	{Name: "Crack", BasePrice: 150, Category: CategoryStreet},
	{Name: "Xanax", BasePrice: 180, Category: CategoryDepressant},
	{Name: "Weed", BasePrice: 200, Category: CategoryPsychedelic},
	{Name: "GHB", BasePrice: 220, Category: CategoryParty},
	{Name: "Speed", BasePrice: 250, Category: CategoryStimulant},
	{Name: "Hashish", BasePrice: 450, Category: CategoryPsychedelic},
	{Name: "Shrooms", BasePrice: 500, Category: CategoryPsychedelic},
	{Name: "Molly", BasePrice: 600, Category: CategoryParty},
	{Name: "PCP", BasePrice: 750, Category: CategoryStreet},
	{Name: "Ketamine", BasePrice: 850, Category: CategoryParty},
	{Name: "Opium", BasePrice: 900, Category: CategoryDepressant},
	{Name: "Acid", BasePrice: 1000, Category: CategoryPsychedelic},
	{Name: "DMT", BasePrice: 2000, Category: CategoryPsychedelic},
	{Name: "Cocaine", BasePrice: 15000, Category: CategoryStimulant},
	{Name: "Heroin", BasePrice: 25000, Category: CategoryDepressant},
	{Name: "Fentanyl", BasePrice: 35000, Category: CategoryStreet},
}

// Locations are the nine neighborhoods on the map.
var Locations = []Location{
	{Name: "Downtown", Description: "Broadway - Tourist traps & honky-tonks."},
	{Name: "East Nashville", Description: "Hip cafes hiding dark secrets."},
	{Name: "The Gulch", Description: "Upscale condos, upscale problems."},
	{Name: "Germantown", Description: "Historic charm, modern price tags."},
	{Name: "Antioch", Description: "The sprawling, unpredictable suburbs."},
	{Name: "Murfreesboro", Description: "A college town with a thirsty market."},
	{Name: "Franklin", Description: "Old money and new opportunities."},
	{Name: "Clarksville", Description: "A military town with strict enforcement."},
	{Name: "Music Row", Description: "Record labels and dreams of stardom."},
}

// FactionNames in display order.
var FactionNames = []string{
	"Jelly's Crew",
	"College Network",
	"Music Industry",
	"Tourist Trade",
	"Street Dealers",
}

// Factions and the locations where they operate.
var Factions = []Faction{
	{Name: "Jelly's Crew", Locations: []string{"Downtown", "East Nashville"}},
	{Name: "Music Industry", Locations: []string{"Music Row", "The Gulch"}},
	{Name: "College Network", Locations: []string{"Murfreesboro", "Antioch"}},
	{Name: "Tourist Trade", Locations: []string{"Downtown", "The Gulch"}},
	{Name: "Street Dealers", Locations: []string{"Germantown", "Clarksville", "Franklin"}},
}

// CharacterClasses are the selectable backgrounds.
var CharacterClasses = []CharacterClass{
	{
		Name:        "Ex-Musician",
		Description: "You came to Nashville with a guitar and a dream. The dream died, but you still know people on Music Row.",
		Perk:        "+20% Music Industry rep, +10% creative drug profits.",
		InitialRep:  map[string]int{"Music Industry": 20},
	},
	{
		Name:        "College Dropout",
		Description: "You were studying at Vanderbilt before you realized there was more money in extracurriculars. You know the campus scene well.",
		Perk:        "+20% College Network rep, +15% student market access.",
		InitialRep:  map[string]int{"College Network": 20},
	},
	{
		Name:        "Bartender",
		Description: "You've been serving drinks to tourists on Broadway for years. You know what they want and how to talk to them.",
		Perk:        "+20% Tourist Trade rep, deals on party drugs.",
		InitialRep:  map[string]int{"Tourist Trade": 20},
	},
	{
		Name:        "Mechanic",
		Description: "You fix cars and make connections. The street-level dealers trust a good mechanic.",
		Perk:        "+20% Street Dealers rep, better prices on gear.",
		InitialRep:  map[string]int{"Street Dealers": 20},
	},
}

// HeatLevels describe the suspicion scale, index == level.
var HeatLevels = []HeatLevel{
	{Level: 0, Description: "Clear. Cops aren't looking for you."},
	{Level: 1, Description: "Noticed. Local cops are aware of new activity."},
	{Level: 2, Description: "Known. Patrols are more frequent in your area."},
	{Level: 3, Description: "Hunted. Risk of shakedowns and targeted patrols."},
	{Level: 4, Description: "Burned. A task force is actively investigating you."},
	{Level: 5, Description: "Kingpin. The entire city's law enforcement wants you."},
}

// DayOfWeekDemand maps weekday index 0..6 (day 1 is index 0, a Sunday) to the
// categories that sell better that day.
var DayOfWeekDemand = map[int][]Category{
	0: {CategoryPsychedelic, CategoryDepressant}, // Sunday
	1: {CategoryStimulant, CategoryDepressant},   // Monday
	2: {CategoryStimulant},                       // Tuesday
	3: {CategoryStimulant},                       // Wednesday
	4: {CategoryParty},                           // Thursday
	5: {CategoryParty, CategoryStimulant},        // Friday
	6: {CategoryParty, CategoryPsychedelic},      // Saturday
}

// LocationDemand is the standing demand bias per neighborhood. Missing
// categories mean no bias.
var LocationDemand = map[string]map[Category]float64{
	"Downtown":       {CategoryParty: 1.5, CategoryStimulant: 1.2, CategoryStreet: 1.1},
	"East Nashville": {CategoryPsychedelic: 1.6, CategoryParty: 1.2},
	"The Gulch":      {CategoryParty: 1.4, CategoryStimulant: 1.3},
	"Germantown":     {CategoryDepressant: 1.2, CategoryStimulant: 1.1},
	"Antioch":        {CategoryStreet: 1.3, CategoryDepressant: 1.2},
	"Murfreesboro":   {CategoryParty: 1.4, CategoryStimulant: 1.3, CategoryPsychedelic: 1.1},
	"Franklin":       {CategoryDepressant: 1.4, CategoryStimulant: 1.2},
	"Clarksville":    {CategoryStimulant: 1.3, CategoryStreet: 1.2},
	"Music Row":      {CategoryStimulant: 1.6, CategoryDepressant: 1.2},
}

// SpecialEvents is the scheduled-event calendar for a 30 day run.
var SpecialEvents = []SpecialEvent{
	{
		Name:       "CMA Awards Week",
		StartDay:   5,
		EndDay:     8,
		Multiplier: 2,
		Categories: []Category{CategoryParty, CategoryStimulant},
		Reason:     "The CMA Awards are in town, and everyone's looking to celebrate.",
	},
	{
		Name:       "Bonnaroo Pre-game",
		StartDay:   12,
		EndDay:     15,
		Multiplier: 3,
		Categories: []Category{CategoryPsychedelic, CategoryParty},
		Reason:     "Festival-goers are stocking up before heading to the farm.",
	},
	{
		Name:       "Finals Week",
		StartDay:   20,
		EndDay:     24,
		Multiplier: 2.5,
		Categories: []Category{CategoryStimulant, CategoryDepressant},
		Reason:     "Students are cramming for finals and need an edge... or an escape.",
	},
}

// LoanOffers the shark extends once the first debt is cleared.
var LoanOffers = []LoanOffer{
	{Amount: 5000, Interest: 0.15},
	{Amount: 10000, Interest: 0.20},
	{Amount: 20000, Interest: 0.25},
}
