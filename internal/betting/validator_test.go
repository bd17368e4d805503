package betting

import (
	"errors"
	"testing"
	"time"

	"betsim-platform/internal/fixtures"
)

func testMatch(id string) fixtures.Match {
	return fixtures.Match{
		ID:          id,
		Home:        "Team A",
		Away:        "Team B",
		EndTime:     time.Now().Add(time.Hour),
		BettingOpen: true,
		Markets: map[string]map[string]fixtures.Outcome{
			string(fixtures.MarketWinner): {
				"Team A":            {Result: true, Odds: 2.0},
				"Team B":            {Result: false, Odds: 3.0},
				fixtures.OptionDraw: {Result: false, Odds: 4.0},
			},
			string(fixtures.MarketDoubleChance): {
				fixtures.DoubleChanceOption("Team A"): {Result: true, Odds: 1.5},
				fixtures.DoubleChanceOption("Team B"): {Result: false, Odds: 1.5},
			},
			string(fixtures.MarketOver15): {
				fixtures.OptionOver: {Result: true, Odds: 1.8},
			},
		},
	}
}

func poolOf(matches ...fixtures.Match) map[string]fixtures.Match {
	return fixtures.IndexByID(matches)
}

func TestValidateSelections_UnknownMatch(t *testing.T) {
	pool := poolOf(testMatch("m1"))
	err := ValidateSelections(pool, []Selection{
		{MatchID: "missing", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, time.Now())

	if !errors.Is(err, ErrUnknownMatch) {
		t.Fatalf("expected ErrUnknownMatch, got %v", err)
	}
}

func TestValidateSelections_MarketClosed(t *testing.T) {
	m := testMatch("m1")
	m.BettingOpen = false
	pool := poolOf(m)

	err := ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, time.Now())

	if !errors.Is(err, ErrMarketClosed) {
		t.Fatalf("expected ErrMarketClosed, got %v", err)
	}
}

func TestValidateSelections_CloseWindow(t *testing.T) {
	m := testMatch("m1")
	now := time.Now()
	m.EndTime = now.Add(59 * time.Second)
	pool := poolOf(m)

	err := ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, now)

	if !errors.Is(err, ErrBettingWindowClosed) {
		t.Fatalf("expected ErrBettingWindowClosed, got %v", err)
	}

	// Exactly 60s is still closed; more than 60s is open.
	m.EndTime = now.Add(60 * time.Second)
	err = ValidateSelections(poolOf(m), []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, now)
	if !errors.Is(err, ErrBettingWindowClosed) {
		t.Fatalf("expected ErrBettingWindowClosed at exactly 60s, got %v", err)
	}

	m.EndTime = now.Add(61 * time.Second)
	if err := ValidateSelections(poolOf(m), []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, now); err != nil {
		t.Fatalf("expected acceptance just outside the window, got %v", err)
	}
}

func TestValidateSelections_DrawWinnerConflict(t *testing.T) {
	pool := poolOf(testMatch("m1"))

	err := ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: fixtures.OptionDraw},
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, time.Now())

	if !errors.Is(err, ErrConflictingSelections) {
		t.Fatalf("expected ErrConflictingSelections, got %v", err)
	}
}

func TestValidateSelections_DoubleChanceConflict(t *testing.T) {
	pool := poolOf(testMatch("m1"))

	// "Team A or Draw" against Team B winning outright.
	err := ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketDoubleChance), Option: fixtures.DoubleChanceOption("Team A")},
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team B"},
	}, time.Now())
	if !errors.Is(err, ErrConflictingSelections) {
		t.Fatalf("expected ErrConflictingSelections, got %v", err)
	}

	// Same team's double chance and outright winner is not a documented
	// exclusion pair and passes.
	err = ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketDoubleChance), Option: fixtures.DoubleChanceOption("Team A")},
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
	}, time.Now())
	if err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestValidateSelections_CrossMarketNotChecked(t *testing.T) {
	pool := poolOf(testMatch("m1"))

	// Winner plus goal totals on the same match is allowed.
	err := ValidateSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
		{MatchID: "m1", Market: string(fixtures.MarketOver15), Option: fixtures.OptionOver},
	}, time.Now())
	if err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestPriceSelections_Product(t *testing.T) {
	pool := poolOf(testMatch("m1"), testMatch("m2"))

	total, err := PriceSelections(pool, []Selection{
		{MatchID: "m1", Market: string(fixtures.MarketWinner), Option: "Team A"},
		{MatchID: "m2", Market: string(fixtures.MarketOver15), Option: fixtures.OptionOver},
	})
	if err != nil {
		t.Fatalf("PriceSelections failed: %v", err)
	}

	want := 2.0 * 1.8
	if total < want-1e-9 || total > want+1e-9 {
		t.Errorf("expected total odds %f, got %f", want, total)
	}
}
