// Package ratelimit provides per-client token bucket rate limiting for
// the search endpoint.
package ratelimit

import (
	"sync"
	"time"
)

// cleanupInterval controls how often idle client buckets are dropped.
const cleanupInterval = 5 * time.Minute

// bucket is a token bucket for one client. Tokens refill at a steady
// rate up to the burst capacity.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes one token if available.
func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// idleSince reports the last time the bucket saw traffic.
func (b *bucket) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastRefill
}

// Limiter tracks a token bucket per client id.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	burst      int
	refillRate float64
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewLimiter creates a limiter allowing refillRate requests per second
// per client with the given burst capacity. A background goroutine
// evicts idle buckets until Stop is called.
func NewLimiter(refillRate float64, burst int) *Limiter {
	l := &Limiter{
		buckets:    make(map[string]*bucket),
		burst:      burst,
		refillRate: refillRate,
		stop:       make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed, along with the number of
// seconds to wait before retrying when denied.
func (l *Limiter) Allow(clientID string) (bool, int) {
	l.mu.Lock()
	b, ok := l.buckets[clientID]
	if !ok {
		b = newBucket(l.burst, l.refillRate)
		l.buckets[clientID] = b
	}
	l.mu.Unlock()

	if b.allow() {
		return true, 0
	}
	retry := int(1 / l.refillRate)
	if retry < 1 {
		retry = 1
	}
	return false, retry
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(time.Now().Add(-cleanupInterval))
		}
	}
}

func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, b := range l.buckets {
		if b.idleSince().Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
