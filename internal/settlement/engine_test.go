package settlement

import (
	"context"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"betsim-platform/internal/betting"
	"betsim-platform/internal/event"
	"betsim-platform/internal/fixtures"
	"betsim-platform/internal/store"
	"betsim-platform/internal/users"
)

func settledMatch(id string, endedAgo time.Duration, result bool) fixtures.Match {
	return fixtures.Match{
		ID:          id,
		Home:        "Team A",
		Away:        "Team B",
		EndTime:     time.Now().Add(-endedAgo),
		BettingOpen: true,
		Markets: map[string]map[string]fixtures.Outcome{
			string(fixtures.MarketWinner): {
				"Team A": {Result: result, Odds: 2.0},
			},
		},
	}
}

func openMatch(id string) fixtures.Match {
	m := settledMatch(id, 0, true)
	m.EndTime = time.Now().Add(time.Hour)
	return m
}

func newTestEngine(t *testing.T, pool []fixtures.Match, bets []betting.Bet, accounts []users.User) (*Engine, store.Store) {
	t.Helper()
	st := store.NewMemory()
	ctx := context.Background()

	if err := st.Save(ctx, store.Matches, pool); err != nil {
		t.Fatalf("seed matches: %v", err)
	}
	if err := st.Save(ctx, store.Bets, bets); err != nil {
		t.Fatalf("seed bets: %v", err)
	}
	if err := st.Save(ctx, store.Users, accounts); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	return New(st, event.NewBus(), zap.NewNop()), st
}

func loadState(t *testing.T, st store.Store) ([]betting.Bet, []users.User) {
	t.Helper()
	ctx := context.Background()
	var bets []betting.Bet
	if err := st.Load(ctx, store.Bets, &bets); err != nil {
		t.Fatalf("load bets: %v", err)
	}
	var accounts []users.User
	if err := st.Load(ctx, store.Users, &accounts); err != nil {
		t.Fatalf("load users: %v", err)
	}
	return bets, accounts
}

func sel(matchID string) betting.Selection {
	return betting.Selection{
		MatchID: matchID,
		Market:  string(fixtures.MarketWinner),
		Option:  "Team A",
	}
}

func TestSweep_SingleLegWon(t *testing.T) {
	pool := []fixtures.Match{settledMatch("m1", time.Minute, true)}
	bets := []betting.Bet{{
		ID:              "b1",
		Username:        "alice",
		Selections:      []betting.Selection{sel("m1")},
		Stake:           10,
		TotalOdds:       2.0,
		PotentialPayout: 20,
		Status:          betting.StatusPending,
	}}
	accounts := []users.User{{Username: "alice", Balance: 90}}

	engine, st := newTestEngine(t, pool, bets, accounts)
	if err := engine.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	gotBets, gotUsers := loadState(t, st)
	if gotBets[0].Status != betting.StatusWon {
		t.Errorf("expected won, got %s", gotBets[0].Status)
	}
	if math.Abs(gotUsers[0].Balance-110) > 1e-9 {
		t.Errorf("expected balance 110 after payout, got %f", gotUsers[0].Balance)
	}
}

func TestSweep_LostShortCircuits(t *testing.T) {
	// Leg 1 ended false, leg 2 still running: the bet loses now.
	pool := []fixtures.Match{
		settledMatch("m1", time.Minute, false),
		openMatch("m2"),
	}
	bets := []betting.Bet{{
		ID:         "b1",
		Username:   "alice",
		Selections: []betting.Selection{sel("m1"), sel("m2")},
		Stake:      10,
		Status:     betting.StatusPending,
	}}
	accounts := []users.User{{Username: "alice", Balance: 90}}

	engine, st := newTestEngine(t, pool, bets, accounts)
	if err := engine.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	gotBets, gotUsers := loadState(t, st)
	if gotBets[0].Status != betting.StatusLost {
		t.Errorf("expected lost, got %s", gotBets[0].Status)
	}
	if gotUsers[0].Balance != 90 {
		t.Errorf("balance changed on a lost bet: %f", gotUsers[0].Balance)
	}
}

func TestSweep_MultiLegWaitsForAllLegs(t *testing.T) {
	// One leg ended true, one still running: stays pending.
	pool := []fixtures.Match{
		settledMatch("m1", time.Minute, true),
		openMatch("m2"),
	}
	bets := []betting.Bet{{
		ID:         "b1",
		Username:   "alice",
		Selections: []betting.Selection{sel("m1"), sel("m2")},
		Status:     betting.StatusPending,
	}}

	engine, st := newTestEngine(t, pool, bets, []users.User{{Username: "alice"}})
	if err := engine.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	gotBets, _ := loadState(t, st)
	if gotBets[0].Status != betting.StatusPending {
		t.Errorf("expected pending, got %s", gotBets[0].Status)
	}
}

func TestSweep_Idempotent(t *testing.T) {
	pool := []fixtures.Match{settledMatch("m1", time.Minute, true)}
	bets := []betting.Bet{{
		ID:              "b1",
		Username:        "alice",
		Selections:      []betting.Selection{sel("m1")},
		Stake:           10,
		TotalOdds:       2.0,
		PotentialPayout: 20,
		Status:          betting.StatusPending,
	}}
	engine, st := newTestEngine(t, pool, bets, []users.User{{Username: "alice", Balance: 90}})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := engine.Sweep(ctx); err != nil {
			t.Fatalf("Sweep %d failed: %v", i, err)
		}
	}

	gotBets, gotUsers := loadState(t, st)
	if gotBets[0].Status != betting.StatusWon {
		t.Errorf("expected won, got %s", gotBets[0].Status)
	}
	// Credited exactly once across three sweeps.
	if math.Abs(gotUsers[0].Balance-110) > 1e-9 {
		t.Errorf("expected balance 110, got %f", gotUsers[0].Balance)
	}
}

func TestSweep_MissingMatchLeavesPending(t *testing.T) {
	// The referenced match fell out of the pool on regeneration.
	engine, st := newTestEngine(t,
		[]fixtures.Match{settledMatch("other", time.Minute, true)},
		[]betting.Bet{{
			ID:         "b1",
			Username:   "alice",
			Selections: []betting.Selection{sel("gone")},
			Status:     betting.StatusPending,
		}},
		[]users.User{{Username: "alice", Balance: 50}},
	)

	if err := engine.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	gotBets, gotUsers := loadState(t, st)
	if gotBets[0].Status != betting.StatusPending {
		t.Errorf("expected pending, got %s", gotBets[0].Status)
	}
	if gotUsers[0].Balance != 50 {
		t.Errorf("balance changed: %f", gotUsers[0].Balance)
	}
}

func TestSweep_TerminalStatusNeverReversed(t *testing.T) {
	// A lost bet whose match now reads true must stay lost.
	pool := []fixtures.Match{settledMatch("m1", time.Minute, true)}
	bets := []betting.Bet{{
		ID:              "b1",
		Username:        "alice",
		Selections:      []betting.Selection{sel("m1")},
		PotentialPayout: 20,
		Status:          betting.StatusLost,
	}}
	engine, st := newTestEngine(t, pool, bets, []users.User{{Username: "alice", Balance: 90}})

	if err := engine.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	gotBets, gotUsers := loadState(t, st)
	if gotBets[0].Status != betting.StatusLost {
		t.Errorf("terminal status reversed to %s", gotBets[0].Status)
	}
	if gotUsers[0].Balance != 90 {
		t.Errorf("settled bet credited again: %f", gotUsers[0].Balance)
	}
}
