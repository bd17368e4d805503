package fixtures

import (
	"context"
	"time"

	"go.uber.org/zap"

	"betsim-platform/internal/event"
	"betsim-platform/internal/monitoring"
	"betsim-platform/internal/store"
)

// Service owns the match pool lifecycle: wholesale replacement on the
// regeneration cadence, reads for the API.
type Service struct {
	store store.Store
	gen   *Generator
	bus   *event.Bus
	log   *zap.Logger
}

func NewService(st store.Store, gen *Generator, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{store: st, gen: gen, bus: bus, log: log}
}

// Regenerate replaces the pool with a fresh batch. Pending bets against
// the old pool are left for the settlement engine to hold as pending.
func (s *Service) Regenerate(ctx context.Context) error {
	matches, err := s.gen.Batch(time.Now())
	if err != nil {
		return err
	}

	if err := s.store.Save(ctx, store.Matches, matches); err != nil {
		return err
	}

	monitoring.PoolRegenerations.Inc()
	s.bus.Publish(event.EventPoolRegenerated, len(matches))
	s.log.Info("match pool regenerated", zap.Int("matches", len(matches)))
	return nil
}

// Pool returns the current match pool.
func (s *Service) Pool(ctx context.Context) ([]Match, error) {
	var matches []Match
	if err := s.store.Load(ctx, store.Matches, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}
