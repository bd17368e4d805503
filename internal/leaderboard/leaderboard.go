// Package leaderboard derives the balance-ranked user summary. It is a
// pure read view over the users and bets collections, never persisted.
package leaderboard

import (
	"context"
	"sort"

	"betsim-platform/internal/betting"
	"betsim-platform/internal/store"
	"betsim-platform/internal/users"
)

// Size caps the leaderboard length.
const Size = 10

type Entry struct {
	Username  string  `json:"username"`
	Balance   float64 `json:"balance"`
	TotalBets int     `json:"totalBets"`
	TotalWon  int     `json:"totalWon"`
}

// Compute ranks every user by balance descending and keeps the top n.
// Ordering between equal balances is not specified; the sort is stable
// over the users collection order.
func Compute(accounts []users.User, bets []betting.Bet, n int) []Entry {
	counts := make(map[string]*Entry, len(accounts))
	entries := make([]Entry, 0, len(accounts))

	for _, u := range accounts {
		entries = append(entries, Entry{Username: u.Username, Balance: u.Balance})
	}
	for i := range entries {
		counts[entries[i].Username] = &entries[i]
	}

	for _, b := range bets {
		e, ok := counts[b.Username]
		if !ok {
			continue
		}
		e.TotalBets++
		if b.Status == betting.StatusWon {
			e.TotalWon++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Top(ctx context.Context) ([]Entry, error) {
	var accounts []users.User
	if err := s.store.Load(ctx, store.Users, &accounts); err != nil {
		return nil, err
	}
	var bets []betting.Bet
	if err := s.store.Load(ctx, store.Bets, &bets); err != nil {
		return nil, err
	}
	return Compute(accounts, bets, Size), nil
}
