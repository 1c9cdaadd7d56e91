package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"whisperwall/contract"
	"whisperwall/domain/event"
	"whisperwall/errors"
)

const defaultRestartInterval = 200 * time.Millisecond

// Supervisor Own a context and a Cancel function
// Run each worker in a goroutine
// Check panics and errors
// Restart workers automatically
// Shutdown properly if parent context is canceled
// Wait for the end of all goroutines via WaitGroup
type Supervisor struct {
	Cancel          context.CancelFunc
	wg              *sync.WaitGroup
	log             *slog.Logger
	telemetryChan   chan<- event.Event
	restartInterval time.Duration
	workers         []contract.Worker
}

func NewSupervisor(log *slog.Logger, telemetryChan chan<- event.Event, restartInterval time.Duration) *Supervisor {
	if restartInterval <= 0 {
		restartInterval = defaultRestartInterval
	}
	return &Supervisor{
		wg:              &sync.WaitGroup{},
		log:             log,
		telemetryChan:   telemetryChan,
		restartInterval: restartInterval,
	}
}

// Run starts every added worker and blocks until all of them returned.
// If the parent cancels, we Cancel. If we call s.Cancel(), only our children cancel.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics or
// fails, the supervisor restarts it after the restart interval. A failure in one
// worker must not stop the supervisor itself.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			panicked := false
			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						panicked = true
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				// Terminated properly, never restart !
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			if panicked {
				s.notifyRestart(workerName)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

// Stop Cancel all goroutines listening channel for Ctx.Done
// Supervisor will wait for all goroutines to finish
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}

func (s *Supervisor) notifyRestart(workerName string) {
	if s.telemetryChan == nil {
		return
	}
	select {
	case s.telemetryChan <- event.New(event.RestartedAfterPanicType,
		event.WorkerRestartedAfterPanic{WorkerName: workerName}):
	default:
		s.log.Debug("Observability telemetry event lost")
	}
}
