// Package ratelimit holds the in-memory, non-blocking limiters guarding
// real-time traffic. Callers pass the current time so tests can drive windows.
package ratelimit

import (
	"sync"
	"time"
)

// Bucket counts accepted events for one key inside the current window.
type Bucket struct {
	Count       int
	WindowStart time.Time
}

// FixedWindow accepts at most limit events per key per window.
// Over-limit events are refused, never queued.
type FixedWindow struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*Bucket
}

func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*Bucket),
	}
}

func (l *FixedWindow) Allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &Bucket{WindowStart: now}
		l.buckets[key] = b
	}
	if now.Sub(b.WindowStart) > l.window {
		b.Count = 0
		b.WindowStart = now
	}
	if b.Count >= l.limit {
		return false
	}
	b.Count++
	return true
}

// Prune drops buckets whose window elapsed, they would reset on next use anyway.
func (l *FixedWindow) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if now.Sub(b.WindowStart) > l.window {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

func (l *FixedWindow) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
