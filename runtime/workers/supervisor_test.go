package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
	"whisperwall/domain/event"
	"whisperwall/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)
	telemetry := make(chan event.Event, 16)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, telemetry, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()
	<-done

	// Then the worker was restarted and each panic was reported
	req.GreaterOrEqual(calls.Load(), int32(2))
	evt := <-telemetry
	req.Equal(event.RestartedAfterPanicType, evt.Type)
	req.Equal("MockWorker", evt.Payload.(event.WorkerRestartedAfterPanic).WorkerName)
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, nil, 0)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then supervisor detected a success, returned nil and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_ParentCancelStopsWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)
	started := make(chan struct{})
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSupervisor(slog.Default(), nil, 0).Add(workerMock).Run(ctx)
		close(done)
	}()

	// Given the worker is running
	select {
	case <-started:
	case <-time.After(time.Second):
		require.Fail(t, "Worker should have been started")
	}

	// When the parent context is cancelled
	cancel()

	// Then the worker is not restarted and Run returns
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Supervisor should stop with its parent context")
	}
}
