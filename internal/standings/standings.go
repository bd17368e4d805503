package standings

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"betsim-platform/internal/fixtures"
	"betsim-platform/internal/store"
)

// Entry is one league-table row.
type Entry struct {
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
	Points int    `json:"points"`
}

// Compute rebuilds the table from scratch from the pool's authoritative
// results: 3 points for a win, 1 each for a draw. Recomputing avoids
// drift from partial updates across regenerations.
func Compute(pool []fixtures.Match) []Entry {
	byTeam := make(map[string]*Entry)
	record := func(team string) *Entry {
		e, ok := byTeam[team]
		if !ok {
			e = &Entry{Team: team}
			byTeam[team] = e
		}
		return e
	}

	for _, m := range pool {
		home := record(m.Home)
		away := record(m.Away)

		switch {
		case m.HomeGoals > m.AwayGoals:
			home.Wins++
			home.Points += 3
			away.Losses++
		case m.AwayGoals > m.HomeGoals:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}

	table := make([]Entry, 0, len(byTeam))
	for _, e := range byTeam {
		table = append(table, *e)
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].Team < table[j].Team
	})

	return table
}

type Service struct {
	store store.Store
	log   *zap.Logger
}

func NewService(st store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

// Refresh recomputes the table from the current pool and persists it.
func (s *Service) Refresh(ctx context.Context) error {
	return s.store.Update(ctx, func(tx store.Tx) error {
		var pool []fixtures.Match
		if err := tx.Load(store.Matches, &pool); err != nil {
			return err
		}
		return tx.Save(store.Standings, Compute(pool))
	})
}

// Table returns the persisted standings, computing on demand when no
// refresh has run yet.
func (s *Service) Table(ctx context.Context) ([]Entry, error) {
	var table []Entry
	if err := s.store.Load(ctx, store.Standings, &table); err != nil {
		return nil, err
	}
	if len(table) > 0 {
		return table, nil
	}

	var pool []fixtures.Match
	if err := s.store.Load(ctx, store.Matches, &pool); err != nil {
		return nil, err
	}
	return Compute(pool), nil
}
