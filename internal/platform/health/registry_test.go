package health_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/health"
	"github.com/jsamuelsen11/watchstore-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("postgres")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("token-blocklist")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["postgres"] != nil {
		t.Errorf("postgres check = %v, want nil", results["postgres"])
	}
	if results["token-blocklist"] != nil {
		t.Errorf("token-blocklist check = %v, want nil", results["token-blocklist"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("postgres")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("token-blocklist")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["postgres"] != nil {
		t.Errorf("postgres check = %v, want nil", results["postgres"])
	}
	if results["token-blocklist"] == nil {
		t.Fatal("token-blocklist check = nil, want error")
	}
	if results["token-blocklist"].Error() != "connection refused" {
		t.Errorf("token-blocklist check = %q, want %q", results["token-blocklist"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("token-blocklist")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["token-blocklist"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["token-blocklist"])
	}
}

func TestRegister_SameNameReplacesChecker(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("postgres")

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("postgres")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["postgres"]
	if !ok {
		t.Fatal(`expected result for key "postgres", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("postgres check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_AppliesPerCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("postgres")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)

	start := time.Now()
	results := r.CheckAll(context.Background())

	if !errors.Is(results["postgres"], context.DeadlineExceeded) {
		t.Errorf("postgres check = %v, want context.DeadlineExceeded", results["postgres"])
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	const delay = 100 * time.Millisecond
	r := health.New()
	for _, name := range []string{"postgres", "token-blocklist"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
			time.Sleep(delay)
			return nil
		})
		r.Register(c)
	}

	start := time.Now()
	r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed >= 2*delay {
		t.Errorf("CheckAll took %v, want checks to overlap (< %v)", elapsed, 2*delay)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker")
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestCheckAll_PanickingCheckerReportsFailure(t *testing.T) {
	t.Parallel()

	broken := mocks.NewMockHealthChecker(t)
	broken.EXPECT().Name().Return("token-blocklist")
	broken.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		panic("nil client")
	})

	ok := mocks.NewMockHealthChecker(t)
	ok.EXPECT().Name().Return("postgres")
	ok.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(broken)
	r.Register(ok)

	results := r.CheckAll(context.Background())

	if err := results["token-blocklist"]; err == nil || !strings.Contains(err.Error(), "nil client") {
		t.Errorf("token-blocklist = %v, want panic reported as error", err)
	}
	if results["postgres"] != nil {
		t.Errorf("postgres = %v, want nil", results["postgres"])
	}
}
