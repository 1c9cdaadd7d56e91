package sink

import (
	"context"
	"sync"
	"whisperwall/domain/event"
	"whisperwall/errors"
)

// SessionSink is the outbound queue of one live connection.
// The registry produces into it, the transport writer drains Events.
type SessionSink struct {
	Events chan event.DomainEvent
	done   chan struct{}
	once   sync.Once
}

func NewSessionSink(bufferSize int) *SessionSink {
	return &SessionSink{
		Events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume never blocks the registry: a full queue drops the event.
func (s *SessionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSinkFull
	}
}

// Close signals the writer to hang up. Safe to call more than once.
func (s *SessionSink) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *SessionSink) Done() <-chan struct{} {
	return s.done
}
