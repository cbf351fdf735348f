package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustleworks/nashville-hustle/pkg/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(seed int64) *Game {
	return New(testLogger(), rand.New(rand.NewSource(seed)))
}

func newStartedGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := newTestGame(seed)
	res := g.StartGame(catalog.CharacterClasses[0])
	require.Equal(t, StatusPlaying, g.Status())
	require.NotEmpty(t, res.Logs)
	return g
}

// clearPending declines any pending choice event so travel stays unblocked.
func clearPending(g *Game) {
	if g.PendingEvent() != nil {
		g.RespondToEvent(1)
	}
}

func TestNewSession(t *testing.T) {
	g := newTestGame(1)
	assert.Equal(t, StatusCharacterSelection, g.Status())
	assert.Nil(t, g.State())
	assert.Nil(t, g.Market())
	assert.Empty(t, g.Log())
}

func TestStartGame(t *testing.T) {
	g := newStartedGame(t, 1)

	st := g.State()
	require.NotNil(t, st)
	assert.Equal(t, catalog.InitialCash, st.Cash)
	assert.Equal(t, catalog.InitialDebt, st.Debt)
	assert.Equal(t, 1, st.Day)
	assert.Equal(t, catalog.StartingLocation, st.Location)
	assert.NotNil(t, st.ActiveChallenge)
	assert.False(t, st.ActiveChallenge.IsComplete)

	require.NotNil(t, g.Market())
	assert.Len(t, g.Market(), len(catalog.Locations))

	// Starting again mid-run is ignored.
	before := g.State()
	res := g.StartGame(catalog.CharacterClasses[1])
	assert.Empty(t, res.Logs)
	assert.Equal(t, before, g.State())
}

func TestBuyExactDebits(t *testing.T) {
	g := newStartedGame(t, 2)

	// Day-1 Downtown Weed mid is at most ~385, so five units always fit
	// the starting bankroll.
	mid := g.Market().Quote("Downtown", "Weed").Mid
	require.Greater(t, mid, 0)
	cost := 5 * mid

	res := g.Transact("Weed", catalog.QualityMid, 5, true)
	require.NotEmpty(t, res.Logs)

	st := g.State()
	assert.Equal(t, catalog.InitialCash-cost, st.Cash)
	assert.Equal(t, 5, st.Held("Weed", catalog.QualityMid))
	assert.Equal(t, 5, st.InventoryUsed())
}

func TestBuyPreconditionsAreSilentNoops(t *testing.T) {
	g := newStartedGame(t, 3)
	before := g.State()

	tests := []struct {
		name   string
		item   string
		grade  catalog.Quality
		qty    int
		buying bool
	}{
		{"cash too low", "Fentanyl", catalog.QualityHigh, 10, true},
		{"no space", "Ludes", catalog.QualityLow, catalog.MaxInventory + 1, true},
		{"zero quantity", "Weed", catalog.QualityMid, 0, true},
		{"negative quantity", "Weed", catalog.QualityMid, -4, true},
		{"unknown item", "Aspirin", catalog.QualityMid, 1, true},
		{"invalid grade", "Weed", catalog.Quality(9), 1, true},
		{"sell more than held", "Weed", catalog.QualityMid, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Transact(tt.item, tt.grade, tt.qty, tt.buying)
			assert.Empty(t, res.Logs)
			assert.Empty(t, res.Cues)
			assert.Equal(t, before, g.State(), "state must be unchanged")
		})
	}
}

func TestSellRoundTrip(t *testing.T) {
	g := newStartedGame(t, 4)

	quote := g.Market().Quote("Downtown", "Weed")
	g.Transact("Weed", catalog.QualityMid, 5, true)
	cashAfterBuy := g.State().Cash

	res := g.Transact("Weed", catalog.QualityMid, 5, false)
	require.NotEmpty(t, res.Logs)

	st := g.State()
	assert.Equal(t, cashAfterBuy+5*quote.Mid, st.Cash)
	assert.Equal(t, 0, st.Held("Weed", catalog.QualityMid))
	assert.Equal(t, 1, st.Stats.TotalDeals)

	// Profit is measured against base price, not what was paid.
	weed, _ := catalog.ItemByName("Weed")
	profit := 5*quote.Mid - 5*weed.BasePrice
	if profit > 0 {
		assert.Equal(t, profit, st.Stats.BiggestProfit)
	} else {
		assert.Equal(t, 0, st.Stats.BiggestProfit)
	}
}

func TestBuyRaisesHeatAndRep(t *testing.T) {
	g := newStartedGame(t, 5)

	// Clear the debt and take the biggest loan so an expensive buy is
	// possible from a known position.
	g.PayDebt()
	res := g.TakeLoan(2)
	require.NotEmpty(t, res.Logs)

	before := g.State()
	price := g.Market().Quote("Downtown", "Cocaine").Low
	require.Greater(t, price, 5000, "day-1 Downtown cocaine should always clear the minor heat threshold")
	require.GreaterOrEqual(t, before.Cash, price)

	g.Transact("Cocaine", catalog.QualityLow, 1, true)
	st := g.State()

	wantHeat := 1
	if price > 10000 {
		wantHeat = 2
	}
	assert.Equal(t, wantHeat, st.Heat)
	assert.Equal(t, wantHeat, st.Stats.HeatRecord)

	// Downtown hosts Jelly's Crew and the Tourist Trade.
	assert.Equal(t, before.Reputation["Jelly's Crew"]+1, st.Reputation["Jelly's Crew"])
	assert.Equal(t, before.Reputation["Tourist Trade"]+1, st.Reputation["Tourist Trade"])
	assert.Equal(t, before.Reputation["Street Dealers"], st.Reputation["Street Dealers"])
}

func TestInventoryInvariant(t *testing.T) {
	g := newStartedGame(t, 6)

	price := g.Market().Quote("Downtown", "Ludes").Low
	qty := g.State().Cash / price
	if qty > catalog.MaxInventory {
		qty = catalog.MaxInventory
	}
	g.Transact("Ludes", catalog.QualityLow, qty, true)

	st := g.State()
	assert.Equal(t, qty, st.InventoryUsed())
	assert.LessOrEqual(t, st.InventoryUsed(), catalog.MaxInventory)

	// One more unit than fits must be ignored outright.
	res := g.Transact("Ludes", catalog.QualityLow, st.InventorySpace()+1, true)
	assert.Empty(t, res.Logs)
	assert.Equal(t, st, g.State())
}

func TestPayDebtExact(t *testing.T) {
	g := newStartedGame(t, 7)

	// A PAY_DEBT challenge reachable with the opening payment pays out in
	// the same transition; fold that into the expectation.
	wantCash := 0
	if c := g.State().ActiveChallenge; c.Kind == catalog.ChallengePayDebt && c.Target <= catalog.InitialDebt {
		wantCash = c.Reward.Amount
	}

	res := g.PayDebt()
	require.NotEmpty(t, res.Logs)

	st := g.State()
	assert.Equal(t, 0, st.Debt)
	assert.Equal(t, wantCash, st.Cash)
	assert.True(t, res.LoanOffer, "first full payoff must surface the loan offer")

	// Nothing left to pay: silent no-op, and no second offer.
	res = g.PayDebt()
	assert.Empty(t, res.Logs)
	assert.False(t, res.LoanOffer)
}

func TestTakeLoan(t *testing.T) {
	g := newStartedGame(t, 8)
	g.PayDebt()

	before := g.State()
	res := g.TakeLoan(0)
	require.NotEmpty(t, res.Logs)

	st := g.State()
	offer := catalog.LoanOffers[0]
	assert.Equal(t, before.Cash+offer.Amount, st.Cash)
	assert.Equal(t, offer.Amount, st.Debt)
	assert.Equal(t, offer.Interest, st.InterestRate)
	assert.True(t, st.HasTakenSecondLoan)

	// Only one follow-up loan, ever.
	g.PayDebt()
	res = g.TakeLoan(1)
	assert.Empty(t, res.Logs)

	// Invalid index before the flag would also have been ignored.
	res = g.TakeLoan(99)
	assert.Empty(t, res.Logs)
}

func TestTravelAdvancesDay(t *testing.T) {
	g := newStartedGame(t, 9)

	res := g.Travel("Music Row")
	require.NotEmpty(t, res.Logs)
	clearPending(g)

	st := g.State()
	assert.Equal(t, 2, st.Day)
	assert.Equal(t, "Music Row", st.Location)
	assert.Equal(t, 2200, st.Debt, "2000 debt at 10%% interest")
	assert.Equal(t, catalog.SearchesPerDay, st.SearchesToday)
	assert.Equal(t, 0, st.Heat)
	assert.Equal(t, 1, st.Stats.DaysSurvived)
	assert.NotNil(t, st.ActiveChallenge)
	assert.False(t, st.ActiveChallenge.IsComplete)
}

func TestTravelInvalidLocation(t *testing.T) {
	g := newStartedGame(t, 10)
	before := g.State()
	res := g.Travel("Memphis")
	assert.Empty(t, res.Logs)
	assert.Equal(t, before, g.State())
	assert.Equal(t, 1, g.State().Day)
}

func TestFullRunEndsAtThirtyDays(t *testing.T) {
	g := newStartedGame(t, 11)

	destinations := []string{"East Nashville", "The Gulch", "Downtown"}
	for i := 0; i < catalog.GameDurationDays-1; i++ {
		res := g.Travel(destinations[i%len(destinations)])
		require.NotEmpty(t, res.Logs, "travel %d should succeed", i+1)
		clearPending(g)
	}

	st := g.State()
	require.Equal(t, catalog.GameDurationDays, st.Day)
	require.Equal(t, StatusPlaying, g.Status())

	marketBefore := g.Market()
	res := g.Travel("Downtown")
	assert.Empty(t, res.Logs)
	assert.Equal(t, StatusGameOver, g.Status())
	assert.Equal(t, catalog.GameDurationDays, g.State().Day, "no 31st day")
	assert.Equal(t, marketBefore, g.Market(), "no 31st market generation")

	// Dead sessions ignore everything.
	before := g.State()
	g.Transact("Weed", catalog.QualityMid, 1, true)
	g.PayDebt()
	g.SearchStash()
	assert.Equal(t, before, g.State())
}

func TestSearchStash(t *testing.T) {
	g := newStartedGame(t, 12)

	for i := 0; i < catalog.SearchesPerDay; i++ {
		res := g.SearchStash()
		require.NotEmpty(t, res.Logs)
		assert.Equal(t, catalog.SearchesPerDay-i-1, g.State().SearchesToday)
	}

	before := g.State()
	res := g.SearchStash()
	assert.Empty(t, res.Logs)
	assert.Equal(t, before, g.State())
}

func TestRespondToEventWithoutPending(t *testing.T) {
	g := newStartedGame(t, 13)
	before := g.State()
	res := g.RespondToEvent(0)
	assert.Empty(t, res.Logs)
	assert.Equal(t, before, g.State())
}

func TestRetire(t *testing.T) {
	g := newStartedGame(t, 14)

	// Retiring with debt outstanding is refused.
	g.Retire()
	assert.Equal(t, StatusPlaying, g.Status())

	g.PayDebt()
	cash := g.State().Cash
	g.Retire()
	assert.Equal(t, StatusGameOver, g.Status())
	assert.Equal(t, cash, g.Score())
}

func TestRollingLogCap(t *testing.T) {
	g := newStartedGame(t, 15)

	for i := 0; i < 15; i++ {
		res := g.SearchStash()
		if len(res.Logs) > 0 {
			// The newest line lands at the front of the rolling log.
			assert.Equal(t, res.Logs[len(res.Logs)-1], g.Log()[0])
		}
		if g.State().SearchesToday == 0 {
			g.Travel("Franklin")
			clearPending(g)
		}
	}

	assert.LessOrEqual(t, len(g.Log()), LogLimit)
}
