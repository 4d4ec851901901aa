package repositories

import (
	"context"
	"time"
)

// StateStore holds pending OAuth states between the install redirect and
// the platform callback. Keys are shop domains; entries expire after the
// configured TTL. Implementations must be safe for concurrent use so a
// future swap to a shared store never touches handler logic.
type StateStore interface {
	Put(ctx context.Context, shop, state string, now time.Time) error
	// Get returns the pending state for shop; ok is false when none exists.
	Get(ctx context.Context, shop string) (state string, ok bool, err error)
	Delete(ctx context.Context, shop string) error
	// SweepExpired removes entries created before cutoff and returns how
	// many were removed.
	SweepExpired(ctx context.Context, cutoff time.Time) (int, error)
}
