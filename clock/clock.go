// Package clock lets time-driven components run against wall time in production
// and against a manually advanced clock in tests.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the part of time.Ticker the periodic loops use.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

func (System) NewTicker(d time.Duration) Ticker { return systemTicker{t: time.NewTicker(d)} }

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// Fake only moves when told to. Its tickers fire from Advance and Set, and
// like time.Ticker they drop ticks nobody is waiting for.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start.UTC().Truncate(time.Millisecond)}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
	f.fire()
	return f.now
}

func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t.UTC().Truncate(time.Millisecond)
	f.fire()
}

func (f *Fake) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{fake: f, c: make(chan time.Time, 1), period: d, next: f.now.Add(d)}
	f.tickers = append(f.tickers, t)
	return t
}

// Tickers counts the tickers not stopped yet, tests wait on it before advancing.
func (f *Fake) Tickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// fire must be called with mu held.
func (f *Fake) fire() {
	for _, t := range f.tickers {
		if t.next.After(f.now) {
			continue
		}
		select {
		case t.c <- t.next:
		default:
		}
		for !t.next.After(f.now) {
			t.next = t.next.Add(t.period)
		}
	}
}

type fakeTicker struct {
	fake   *Fake
	c      chan time.Time
	period time.Duration
	next   time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()
	for i, other := range t.fake.tickers {
		if other == t {
			t.fake.tickers = append(t.fake.tickers[:i], t.fake.tickers[i+1:]...)
			return
		}
	}
}
