package identity

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type attempt struct {
	lim  *rate.Limiter
	seen time.Time
}

// attemptLimiter throttles login/register attempts per email. Stale
// entries are pruned on access.
type attemptLimiter struct {
	mu    sync.Mutex
	seen  map[string]*attempt
	r     rate.Limit
	burst int
}

func newAttemptLimiter(rps float64, burst int) *attemptLimiter {
	return &attemptLimiter{
		seen:  make(map[string]*attempt),
		r:     rate.Limit(rps),
		burst: burst,
	}
}

func (l *attemptLimiter) allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for k, a := range l.seen {
		if time.Since(a.seen) > 3*time.Minute {
			delete(l.seen, k)
		}
	}

	a, ok := l.seen[email]
	if !ok {
		a = &attempt{lim: rate.NewLimiter(l.r, l.burst)}
		l.seen[email] = a
	}
	a.seen = time.Now()
	return a.lim.Allow()
}
