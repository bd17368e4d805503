// Package store provides the collection-based persistence contract used by
// the betting engine. A collection is loaded and saved wholesale as an
// ordered sequence of records; Update runs a read-modify-write sequence as
// a single critical section so concurrent writers cannot lose updates.
package store

import "context"

// Collection names.
const (
	Users     = "users"
	Matches   = "matches"
	Bets      = "bets"
	Standings = "standings"
)

// Tx gives a callback access to collections inside one atomic update.
type Tx interface {
	// Load unmarshals a collection into v (a pointer to a slice).
	// A collection that was never saved loads as empty.
	Load(name string, v any) error
	// Save replaces the collection wholesale with v.
	Save(name string, v any) error
}

type Store interface {
	Load(ctx context.Context, name string, v any) error
	Save(ctx context.Context, name string, v any) error
	// Update serializes against all other updates on this store. If fn
	// returns an error nothing written inside it is applied.
	Update(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
