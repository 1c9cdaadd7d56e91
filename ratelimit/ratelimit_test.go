package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func TestFixedWindow_TwentyFivePerWindow(t *testing.T) {
	req := require.New(t)
	limiter := NewFixedWindow(20, time.Minute)

	// When one IP sends 25 events inside the same window
	accepted, dropped := 0, 0
	for i := 0; i < 25; i++ {
		if limiter.Allow("10.0.0.1", t0.Add(time.Duration(i)*time.Second)) {
			accepted++
		} else {
			dropped++
		}
	}

	// Then 20 are accepted and 5 dropped
	req.Equal(20, accepted)
	req.Equal(5, dropped)

	// And another IP has its own budget
	req.True(limiter.Allow("10.0.0.2", t0.Add(30*time.Second)))
}

func TestFixedWindow_ResetsAfterWindow(t *testing.T) {
	req := require.New(t)
	limiter := NewFixedWindow(2, time.Minute)

	req.True(limiter.Allow("ip", t0))
	req.True(limiter.Allow("ip", t0.Add(10*time.Second)))
	req.False(limiter.Allow("ip", t0.Add(59*time.Second)))

	// Once the window elapsed the count starts over
	req.True(limiter.Allow("ip", t0.Add(61*time.Second)))
}

func TestFixedWindow_Prune(t *testing.T) {
	req := require.New(t)
	limiter := NewFixedWindow(5, time.Minute)
	limiter.Allow("old", t0)
	limiter.Allow("young", t0.Add(50*time.Second))

	removed := limiter.Prune(t0.Add(90 * time.Second))

	req.Equal(1, removed)
	req.Equal(1, limiter.Len())
}

func TestFixedWindow_Concurrent(t *testing.T) {
	req := require.New(t)
	limiter := NewFixedWindow(20, time.Minute)

	var mu sync.Mutex
	accepted := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("ip", t0) {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	req.Equal(20, accepted)
}

func TestSpacing_TwelveSeconds(t *testing.T) {
	req := require.New(t)
	limiter := NewSpacing(12 * time.Second)

	req.True(limiter.Allow("session", t0))
	req.False(limiter.Allow("session", t0.Add(5*time.Second)))
	req.False(limiter.Allow("session", t0.Add(11*time.Second)))
	req.True(limiter.Allow("session", t0.Add(12*time.Second)))

	// A refused event does not push the next slot further
	req.False(limiter.Allow("session", t0.Add(20*time.Second)))
	req.True(limiter.Allow("session", t0.Add(24*time.Second)))

	// Sessions are independent
	req.True(limiter.Allow("other", t0.Add(5*time.Second)))
}

func TestSpacing_Prune(t *testing.T) {
	req := require.New(t)
	limiter := NewSpacing(10 * time.Second)
	limiter.Allow("a", t0)
	limiter.Allow("b", t0.Add(8*time.Second))

	req.Equal(1, limiter.Prune(t0.Add(12*time.Second)))
	req.Equal(1, limiter.Len())
}
