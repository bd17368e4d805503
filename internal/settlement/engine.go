// Package settlement advances pending bets to a terminal status by
// revealing the pre-computed match outcomes once end times have passed.
// It is the only writer of bet status and balance credits.
package settlement

import (
	"context"
	"time"

	"go.uber.org/zap"

	"betsim-platform/internal/betting"
	"betsim-platform/internal/event"
	"betsim-platform/internal/fixtures"
	"betsim-platform/internal/monitoring"
	"betsim-platform/internal/store"
	"betsim-platform/internal/users"
)

type Engine struct {
	store store.Store
	bus   *event.Bus
	log   *zap.Logger
	now   func() time.Time
}

func New(st store.Store, bus *event.Bus, log *zap.Logger) *Engine {
	return &Engine{store: st, bus: bus, log: log, now: time.Now}
}

// Sweep settles every pending bet it can. Bet status and the winner's
// balance credit commit atomically; already-settled bets are skipped, so
// re-running a sweep changes nothing.
func (e *Engine) Sweep(ctx context.Context) error {
	now := e.now()

	var won, lost []betting.Bet
	err := e.store.Update(ctx, func(tx store.Tx) error {
		var pool []fixtures.Match
		if err := tx.Load(store.Matches, &pool); err != nil {
			return err
		}
		var bets []betting.Bet
		if err := tx.Load(store.Bets, &bets); err != nil {
			return err
		}
		var accounts []users.User
		if err := tx.Load(store.Users, &accounts); err != nil {
			return err
		}

		idx := fixtures.IndexByID(pool)
		won, lost = nil, nil

		for i := range bets {
			if bets[i].Status != betting.StatusPending {
				continue
			}

			switch resolve(bets[i], idx, now) {
			case betting.StatusLost:
				bets[i].Status = betting.StatusLost
				lost = append(lost, bets[i])
			case betting.StatusWon:
				bets[i].Status = betting.StatusWon
				if u := users.Find(accounts, bets[i].Username); u >= 0 {
					accounts[u].Balance += bets[i].PotentialPayout
				}
				won = append(won, bets[i])
			}
		}

		if len(won) == 0 && len(lost) == 0 {
			return nil
		}

		if err := tx.Save(store.Bets, bets); err != nil {
			return err
		}
		return tx.Save(store.Users, accounts)
	})
	if err != nil {
		return err
	}

	for _, b := range won {
		monitoring.BetsSettled.WithLabelValues(string(betting.StatusWon)).Inc()
		e.bus.Publish(event.EventBetWon, b)
	}
	for _, b := range lost {
		monitoring.BetsSettled.WithLabelValues(string(betting.StatusLost)).Inc()
		e.bus.Publish(event.EventBetLost, b)
	}

	if len(won) > 0 || len(lost) > 0 {
		e.log.Info("settlement sweep",
			zap.Int("won", len(won)),
			zap.Int("lost", len(lost)),
		)
	}
	return nil
}

// resolve applies the state machine to one bet. Lost short-circuits on
// the first ended leg with a false result; won requires every leg ended
// and true. A leg whose match left the pool holds the bet pending.
func resolve(bet betting.Bet, pool map[string]fixtures.Match, now time.Time) betting.Status {
	allEnded := true

	for _, sel := range bet.Selections {
		m, ok := pool[sel.MatchID]
		if !ok {
			return betting.StatusPending
		}
		if !m.Ended(now) {
			allEnded = false
			continue
		}
		out, ok := m.Outcome(sel.Market, sel.Option)
		if !ok {
			return betting.StatusPending
		}
		if !out.Result {
			return betting.StatusLost
		}
	}

	if allEnded {
		return betting.StatusWon
	}
	return betting.StatusPending
}
