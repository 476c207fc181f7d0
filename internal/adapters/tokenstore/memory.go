package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// MemoryBlocklist keeps revoked token ids in process memory. Expired entries
// are pruned lazily on each call.
type MemoryBlocklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

var (
	_ ports.TokenBlocklist = (*MemoryBlocklist)(nil)
	_ ports.HealthChecker  = (*MemoryBlocklist)(nil)
)

// NewMemoryBlocklist returns an empty in-process blocklist.
func NewMemoryBlocklist() *MemoryBlocklist {
	return &MemoryBlocklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke implements ports.TokenBlocklist.
func (b *MemoryBlocklist) Revoke(_ context.Context, tokenID string, until time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.pruneLocked(now)
	if until.After(now) {
		b.entries[tokenID] = until
	}
	return nil
}

// IsRevoked implements ports.TokenBlocklist.
func (b *MemoryBlocklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	until, ok := b.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !b.now().Before(until) {
		delete(b.entries, tokenID)
		return false, nil
	}
	return true, nil
}

// Len returns the number of tracked token ids, including expired ones not
// yet pruned.
func (b *MemoryBlocklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Name implements ports.HealthChecker.
func (b *MemoryBlocklist) Name() string {
	return checkerName
}

// HealthCheck implements ports.HealthChecker. The in-process store is always
// available.
func (b *MemoryBlocklist) HealthCheck(context.Context) error {
	return nil
}

func (b *MemoryBlocklist) pruneLocked(now time.Time) {
	for id, until := range b.entries {
		if !now.Before(until) {
			delete(b.entries, id)
		}
	}
}
