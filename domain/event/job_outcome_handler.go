package event

import (
	"log/slog"
	"whisperwall/errors"
)

type JobOutcomeHandler struct {
	log     *slog.Logger
	metrics Metrics
}

func NewJobOutcomeHandler(log *slog.Logger, metrics Metrics) *JobOutcomeHandler {
	return &JobOutcomeHandler{log: log, metrics: metrics}
}

func (h *JobOutcomeHandler) Handle(event Event) {
	switch event.Type {
	case JobOutcomeType:
		payload, ok := event.Payload.(JobOutcome)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.IncJobOutcome(payload.Action)
	case GenerationLatencyType:
		payload, ok := event.Payload.(GenerationLatency)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.ObserveGeneration(payload.Latency, payload.Failed)
	}
}
