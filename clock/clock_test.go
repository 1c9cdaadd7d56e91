package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFake_Advance(t *testing.T) {
	req := require.New(t)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	// When the fake clock is advanced twice
	fake.Advance(30 * time.Second)
	now := fake.Advance(time.Minute)

	// Then only the requested amount of time elapsed
	req.Equal(start.Add(90*time.Second), now)
	req.Equal(now, fake.Now())
}

func TestFake_TruncatesToMillisecond(t *testing.T) {
	req := require.New(t)
	fake := NewFake(time.Date(2026, 3, 1, 10, 0, 0, 1_500_000, time.UTC))
	req.Equal(1_000_000, fake.Now().Nanosecond())
}

func TestFake_TickerFiresOnAdvance(t *testing.T) {
	req := require.New(t)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fake := NewFake(start)
	ticker := fake.NewTicker(30 * time.Second)
	req.Equal(1, fake.Tickers())

	// When less than one period elapsed nothing fires
	fake.Advance(29 * time.Second)
	select {
	case <-ticker.C():
		req.Fail("ticker fired before its period")
	default:
	}

	// When the period is reached the tick carries the scheduled time
	fake.Advance(time.Second)
	select {
	case at := <-ticker.C():
		req.Equal(start.Add(30*time.Second), at)
	default:
		req.Fail("ticker did not fire")
	}

	// When several periods elapse at once a single tick is kept
	fake.Advance(2 * time.Minute)
	<-ticker.C()
	select {
	case <-ticker.C():
		req.Fail("missed ticks should be dropped")
	default:
	}

	// When stopped the ticker is forgotten
	ticker.Stop()
	req.Equal(0, fake.Tickers())
	fake.Advance(time.Hour)
	select {
	case <-ticker.C():
		req.Fail("stopped ticker fired")
	default:
	}
}
