package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"betsim-platform/internal/event"
	"betsim-platform/internal/session"
	"betsim-platform/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemory(), session.NewMemory(), event.NewBus(), zap.NewNop(), 1000)
}

func TestRegister(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, token, err := svc.Register(ctx, "alice", "secret", "@alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Error("no session token issued")
	}
	if profile.Balance != 1000 {
		t.Errorf("expected starting balance 1000, got %f", profile.Balance)
	}

	// Duplicate username is rejected.
	if _, _, err := svc.Register(ctx, "alice", "other", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_MissingCredentials(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Register(context.Background(), "", "pw", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "secret", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	profile, token, err := svc.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" || profile.Username != "alice" {
		t.Errorf("unexpected login result: %+v token=%q", profile, token)
	}

	if _, _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ghost", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "secret", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	profile, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.Username != "alice" {
		t.Errorf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Get(ctx, "ghost"); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("expected ErrUnknownUser, got %v", err)
	}
}
