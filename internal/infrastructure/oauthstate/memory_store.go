// Package oauthstate implements the pending OAuth state store used between
// the install redirect and the platform callback. Two implementations exist:
// an in-process map for single-instance deployments and a Redis-backed store
// for deployments that need the state shared across instances.
package oauthstate

import (
	"context"
	"sync"
	"time"
)

const keyPrefix = "state_"

type entry struct {
	state     string
	createdAt time.Time
}

// MemoryStore is a process-scoped StateStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

func (s *MemoryStore) Put(_ context.Context, shop, state string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[keyPrefix+shop] = entry{state: state, createdAt: now}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, shop string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[keyPrefix+shop]
	if !ok {
		return "", false, nil
	}
	return e.state, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, shop string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, keyPrefix+shop)
	return nil
}

func (s *MemoryStore) SweepExpired(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.entries {
		if e.createdAt.Before(cutoff) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed, nil
}
