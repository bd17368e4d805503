package betting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"betsim-platform/internal/event"
	"betsim-platform/internal/fixtures"
	"betsim-platform/internal/monitoring"
	"betsim-platform/internal/store"
	"betsim-platform/internal/users"
)

// PlaceRequest is a proposed wager.
type PlaceRequest struct {
	Username   string
	Selections []Selection
	Stake      float64
}

// Service gates all writes into the bet collection.
type Service struct {
	store store.Store
	bus   *event.Bus
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st store.Store, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{store: st, bus: bus, log: log, now: time.Now}
}

// Place validates the wager against the current pool and the user's
// balance, prices it at current odds, debits the stake and persists the
// pending bet. The debit and the bet write happen in one critical
// section; a rejected or failed placement applies nothing.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (Bet, error) {
	if req.Username == "" {
		return Bet{}, ErrUnknownUser
	}
	if req.Stake <= 0 {
		return Bet{}, reject(ErrInvalidStake)
	}
	if len(req.Selections) == 0 {
		return Bet{}, reject(ErrNoSelections)
	}

	var placed Bet
	err := s.store.Update(ctx, func(tx store.Tx) error {
		var pool []fixtures.Match
		if err := tx.Load(store.Matches, &pool); err != nil {
			return err
		}
		var accounts []users.User
		if err := tx.Load(store.Users, &accounts); err != nil {
			return err
		}
		var bets []Bet
		if err := tx.Load(store.Bets, &bets); err != nil {
			return err
		}

		i := users.Find(accounts, req.Username)
		if i < 0 {
			return ErrUnknownUser
		}

		idx := fixtures.IndexByID(pool)
		if err := ValidateSelections(idx, req.Selections, s.now()); err != nil {
			return reject(err)
		}

		if req.Stake > accounts[i].Balance {
			return reject(ErrInsufficientBalance)
		}

		totalOdds, err := PriceSelections(idx, req.Selections)
		if err != nil {
			return reject(err)
		}

		placed = Bet{
			ID:              uuid.NewString(),
			Username:        req.Username,
			Selections:      req.Selections,
			Stake:           req.Stake,
			TotalOdds:       totalOdds,
			PotentialPayout: req.Stake * totalOdds,
			Status:          StatusPending,
			PlacedAt:        s.now(),
		}

		accounts[i].Balance -= req.Stake
		accounts[i].BetHistory = append(accounts[i].BetHistory, placed.ID)
		bets = append(bets, placed)

		if err := tx.Save(store.Users, accounts); err != nil {
			return err
		}
		return tx.Save(store.Bets, bets)
	})
	if err != nil {
		return Bet{}, err
	}

	monitoring.BetsPlaced.Inc()
	s.bus.Publish(event.EventBetPlaced, placed)
	s.log.Info("bet placed",
		zap.String("bet", placed.ID),
		zap.String("username", placed.Username),
		zap.Float64("stake", placed.Stake),
		zap.Float64("totalOdds", placed.TotalOdds),
	)
	return placed, nil
}

// History returns the user's bets, placement order.
func (s *Service) History(ctx context.Context, username string) ([]Bet, error) {
	var accounts []users.User
	if err := s.store.Load(ctx, store.Users, &accounts); err != nil {
		return nil, err
	}
	if users.Find(accounts, username) < 0 {
		return nil, ErrUnknownUser
	}

	var bets []Bet
	if err := s.store.Load(ctx, store.Bets, &bets); err != nil {
		return nil, err
	}

	history := []Bet{}
	for _, b := range bets {
		if b.Username == username {
			history = append(history, b)
		}
	}
	return history, nil
}

// reject counts the rejection reason before returning it unchanged.
func reject(err error) error {
	monitoring.BetsRejected.WithLabelValues(err.Error()).Inc()
	return err
}
