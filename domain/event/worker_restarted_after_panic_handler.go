package event

import (
	"log/slog"
	"whisperwall/errors"
)

// WorkerRestartedAfterPanicHandler handles events when a worker panics and is restarted.
// It is triggered by the Supervisor when a worker recovers from a panic.
type WorkerRestartedAfterPanicHandler struct {
	log     *slog.Logger
	metrics Metrics
}

func NewWorkerRestartedAfterPanicHandler(log *slog.Logger, metrics Metrics) *WorkerRestartedAfterPanicHandler {
	return &WorkerRestartedAfterPanicHandler{log: log, metrics: metrics}
}

func (h *WorkerRestartedAfterPanicHandler) Handle(event Event) {
	switch event.Type {
	case RestartedAfterPanicType:
		payload, ok := event.Payload.(WorkerRestartedAfterPanic)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.IncWorkerRestart(payload.WorkerName)
		h.log.Warn("Worker restarted after panic", "worker", payload.WorkerName)
	}
}
