package ratelimit

import (
	"sync"
	"time"
)

// Spacing enforces a minimum delay between two accepted events of the same key.
type Spacing struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
}

func NewSpacing(interval time.Duration) *Spacing {
	return &Spacing{interval: interval, last: make(map[string]time.Time)}
}

func (s *Spacing) Allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.last[key]; ok && now.Sub(last) < s.interval {
		return false
	}
	s.last[key] = now
	return true
}

func (s *Spacing) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, last := range s.last {
		if now.Sub(last) >= s.interval {
			delete(s.last, key)
			removed++
		}
	}
	return removed
}

func (s *Spacing) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.last)
}
