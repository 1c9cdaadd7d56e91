package event

import (
	"log/slog"
	"whisperwall/errors"
)

// DropHandler counts real-time events discarded at the protocol boundary.
// Drops are invisible to the sender, this is where they become observable.
type DropHandler struct {
	log     *slog.Logger
	metrics Metrics
}

func NewDropHandler(log *slog.Logger, metrics Metrics) *DropHandler {
	return &DropHandler{log: log, metrics: metrics}
}

func (h *DropHandler) Handle(event Event) {
	switch event.Type {
	case DropType:
		payload, ok := event.Payload.(Dropped)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.IncDrop(payload.Reason, payload.EventName)
	}
}
