package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/telemetry"
)

const (
	// clientIdleTTL is how long an idle client's bucket is kept.
	clientIdleTTL = 10 * time.Minute
	sweepInterval = time.Minute
)

// RateLimiter applies a per-client-IP token bucket. Buckets of clients idle
// for longer than clientIdleTTL are swept by a background goroutine that
// runs until Stop is called.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	metrics *telemetry.Metrics
	now     func() time.Time

	mu      sync.Mutex
	clients map[string]*clientBucket

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter and starts its sweeper. A non-positive
// RequestsPerSecond disables limiting. metrics may be nil.
func NewRateLimiter(cfg config.RateLimitConfig, metrics *telemetry.Metrics) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   max(cfg.Burst, 1),
		metrics: metrics,
		now:     time.Now,
		clients: make(map[string]*clientBucket),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Handler is the middleware function.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.limit <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.allow(clientIP(r)) {
			next.ServeHTTP(w, r)
			return
		}

		if rl.metrics != nil {
			rl.metrics.RateLimitedTotal.Add(r.Context(), 1,
				metric.WithAttributes(telemetry.AttrHTTPMethod.String(r.Method)))
		}

		w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
		dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusTooManyRequests,
			fmt.Sprintf("rate limit of %g requests per second exceeded", float64(rl.limit))))
	})
}

// Stop terminates the sweeper and waits for it to exit. Safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
	<-rl.done
}

// retryAfter is the whole number of seconds until one token refills.
func (rl *RateLimiter) retryAfter() int {
	return max(int(math.Ceil(1/float64(rl.limit))), 1)
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = b
	}
	now := rl.now()
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepLoop() {
	defer close(rl.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops buckets idle for longer than clientIdleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-clientIdleTTL)
	for k, b := range rl.clients {
		if b.lastSeen.Before(cutoff) {
			delete(rl.clients, k)
		}
	}
}

// clientIP returns the host part of RemoteAddr. chi's RealIP middleware,
// when installed upstream, has already rewritten RemoteAddr from proxy
// headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
