package tokenstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryBlocklist_RevokeAndExpire(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	b := NewMemoryBlocklist()
	b.now = func() time.Time { return now }

	ctx := context.Background()
	if err := b.Revoke(ctx, "jti-1", now.Add(time.Minute)); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, _ := b.IsRevoked(ctx, "jti-1")
	if !revoked {
		t.Fatal("IsRevoked() = false before expiry, want true")
	}

	now = now.Add(2 * time.Minute)

	revoked, _ = b.IsRevoked(ctx, "jti-1")
	if revoked {
		t.Error("IsRevoked() = true after expiry, want false")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after expiry check, want 0", b.Len())
	}
}

func TestMemoryBlocklist_PrunesOnRevoke(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	b := NewMemoryBlocklist()
	b.now = func() time.Time { return now }

	ctx := context.Background()
	_ = b.Revoke(ctx, "short", now.Add(time.Second))
	_ = b.Revoke(ctx, "already-expired", now.Add(-time.Second))

	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}

	now = now.Add(time.Minute)
	_ = b.Revoke(ctx, "long", now.Add(time.Hour))

	if b.Len() != 1 {
		t.Errorf("Len() = %d after prune, want 1", b.Len())
	}
}

func TestMemoryBlocklist_Concurrent(t *testing.T) {
	t.Parallel()

	b := NewMemoryBlocklist()
	ctx := context.Background()
	until := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("jti-%d", i)
			_ = b.Revoke(ctx, id, until)
			if revoked, _ := b.IsRevoked(ctx, id); !revoked {
				t.Errorf("IsRevoked(%s) = false, want true", id)
			}
		}()
	}
	wg.Wait()

	if b.Len() != 50 {
		t.Errorf("Len() = %d, want 50", b.Len())
	}
}

func TestMemoryBlocklist_Health(t *testing.T) {
	t.Parallel()

	b := NewMemoryBlocklist()
	if b.Name() != "token-blocklist" {
		t.Errorf("Name() = %q", b.Name())
	}
	if err := b.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}
