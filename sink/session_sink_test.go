package sink

import (
	"context"
	"testing"
	"whisperwall/domain/event"
	"whisperwall/errors"

	"github.com/stretchr/testify/require"
)

func TestSessionSink_ConsumeUntilFull(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(2)
	ctx := context.Background()

	req.NoError(s.Consume(ctx, event.Reauthenticate{}))
	req.NoError(s.Consume(ctx, event.Reauthenticate{}))

	// The third event does not block, it is refused
	req.ErrorIs(s.Consume(ctx, event.Reauthenticate{}), errors.ErrSinkFull)
	req.Len(s.Events, 2)
}

func TestSessionSink_Close(t *testing.T) {
	req := require.New(t)
	s := NewSessionSink(4)

	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		req.Fail("done channel should be closed")
	}
	req.ErrorIs(s.Consume(context.Background(), event.Reauthenticate{}), errors.ErrSessionClosed)
}
