package users

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"betsim-platform/internal/event"
	"betsim-platform/internal/session"
	"betsim-platform/internal/store"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUser        = errors.New("unknown user")
)

type Service struct {
	store           store.Store
	sessions        session.Store
	bus             *event.Bus
	log             *zap.Logger
	startingBalance float64
}

func NewService(st store.Store, sessions session.Store, bus *event.Bus, log *zap.Logger, startingBalance float64) *Service {
	return &Service{
		store:           st,
		sessions:        sessions,
		bus:             bus,
		log:             log,
		startingBalance: startingBalance,
	}
}

// Register creates an account with the starting balance and opens a
// session for it.
func (s *Service) Register(ctx context.Context, username, password, socials string) (Profile, string, error) {
	if username == "" || password == "" {
		return Profile{}, "", ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, "", err
	}

	var created User
	err = s.store.Update(ctx, func(tx store.Tx) error {
		var records []User
		if err := tx.Load(store.Users, &records); err != nil {
			return err
		}
		if Find(records, username) >= 0 {
			return ErrUsernameTaken
		}

		created = User{
			Username:   username,
			Password:   string(hash),
			Socials:    socials,
			Balance:    s.startingBalance,
			BetHistory: []string{},
		}
		records = append(records, created)
		return tx.Save(store.Users, records)
	})
	if err != nil {
		return Profile{}, "", err
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return Profile{}, "", err
	}

	s.bus.Publish(event.EventUserRegistered, username)
	s.log.Info("user registered", zap.String("username", username))
	return created.Profile(), token, nil
}

// Login checks the password and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (Profile, string, error) {
	if username == "" || password == "" {
		return Profile{}, "", ErrMissingCredentials
	}

	var records []User
	if err := s.store.Load(ctx, store.Users, &records); err != nil {
		return Profile{}, "", err
	}

	i := Find(records, username)
	if i < 0 {
		return Profile{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(records[i].Password), []byte(password)) != nil {
		return Profile{}, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return Profile{}, "", err
	}
	return records[i].Profile(), token, nil
}

// Get returns the profile for username.
func (s *Service) Get(ctx context.Context, username string) (Profile, error) {
	var records []User
	if err := s.store.Load(ctx, store.Users, &records); err != nil {
		return Profile{}, err
	}
	i := Find(records, username)
	if i < 0 {
		return Profile{}, ErrUnknownUser
	}
	return records[i].Profile(), nil
}
