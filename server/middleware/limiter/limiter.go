// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep idle limiters in memory.
	CleanupInterval       = 5 * time.Minute // Interval between limiter cleanup runs.

	// Clients are grouped into networks of these prefix lengths.
	IPv4Prefix = 32
	IPv6Prefix = 64
)

// limiterWrapper holds a rate limiter and the last time it was used.
type limiterWrapper struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter applies a token bucket per client network.
type Limiter struct {
	rate  rate.Limit
	burst int

	mu          sync.Mutex
	limiters    map[string]*limiterWrapper
	lastCleanup time.Time

	// timeNow allows tests to control the clock.
	timeNow func() time.Time
}

// New returns a Limiter allowing requestsPerSecond on average with bursts
// of up to burst requests per network.
func New(requestsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		limiters: make(map[string]*limiterWrapper),
		timeNow:  time.Now,
	}
}

// Evaluate is the middleware. Requests over the limit receive
// 429 Too Many Requests with a Retry-After header.
func (l *Limiter) Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	network := networkKey(getClientIP(r), IPv4Prefix, IPv6Prefix)

	if delay := l.reserve(network); delay > 0 {
		seconds := int(math.Ceil(delay.Seconds()))

		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

		log.Debug().
			Str("network", network).
			Dur("retry_after", delay).
			Msg("Rate limited request")

		return
	}

	next.ServeHTTP(w, r)
}

// reserve takes a token for network. It returns zero when the request may
// proceed, or how long the client should wait otherwise.
func (l *Limiter) reserve(network string) time.Duration {
	now := l.timeNow()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanupLocked(now)

	wrapper, ok := l.limiters[network]
	if !ok {
		wrapper = &limiterWrapper{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[network] = wrapper
	}

	wrapper.lastAccess = now

	reservation := wrapper.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return time.Duration(math.MaxInt64)
	}

	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)

		return delay
	}

	return 0
}

// cleanupLocked drops limiters idle for longer than LimiterExpiryDuration,
// at most once per CleanupInterval.
func (l *Limiter) cleanupLocked(now time.Time) {
	if l.lastCleanup.IsZero() {
		l.lastCleanup = now

		return
	}

	if now.Sub(l.lastCleanup) < CleanupInterval {
		return
	}

	l.lastCleanup = now

	removed := 0

	for network, wrapper := range l.limiters {
		if now.Sub(wrapper.lastAccess) > LimiterExpiryDuration {
			delete(l.limiters, network)

			removed++
		}
	}

	if removed > 0 {
		log.Debug().
			Int("removed", removed).
			Int("remaining", len(l.limiters)).
			Msg("limiter cleanup")
	}
}

// Len returns the number of tracked networks.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}
