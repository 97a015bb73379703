package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/axiora/axiora-go/internal/models"
)

type callerWindow struct {
	stamps []time.Time
}

// RateLimiter admits requests per caller within a sliding one-minute window
// over request timestamps.
type RateLimiter struct {
	mu      sync.Mutex
	callers map[string]*callerWindow
	limit   int
	window  time.Duration
}

func NewRateLimiter(limitPerMinute int) *RateLimiter {
	return &RateLimiter{
		callers: make(map[string]*callerWindow),
		limit:   limitPerMinute,
		window:  time.Minute,
	}
}

// allow prunes stamps older than the window, then admits the request if the
// caller still has budget. Split from the handler so tests can drive the
// clock.
func (rl *RateLimiter) allow(key string, now time.Time) (remaining int, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, exists := rl.callers[key]
	if !exists {
		cw = &callerWindow{}
		rl.callers[key] = cw
	}

	cutoff := now.Add(-rl.window)
	live := cw.stamps[:0]
	for _, ts := range cw.stamps {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}
	cw.stamps = live

	if len(cw.stamps) >= rl.limit {
		return 0, false
	}
	cw.stamps = append(cw.stamps, now)

	// Occasional sweep of idle callers to bound the map.
	if len(rl.callers) > 1024 {
		for k, old := range rl.callers {
			if len(old.stamps) == 0 || old.stamps[len(old.stamps)-1].Before(cutoff) {
				delete(rl.callers, k)
			}
		}
	}
	return rl.limit - len(cw.stamps), true
}

// RateLimit enforces a per-caller request budget, keyed by API key when
// present, else remote address.
func RateLimit(limitPerMinute int) func(http.Handler) http.Handler {
	rl := NewRateLimiter(limitPerMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				key = r.RemoteAddr
			}

			remaining, ok := rl.allow(key, time.Now())
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitPerMinute))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				w.Header().Set("Retry-After", "60")
				models.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
