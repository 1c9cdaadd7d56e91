package event

import (
	"log/slog"
	"whisperwall/errors"
)

// MemoryHandler publishes the samples taken by the cleanup sweeper.
type MemoryHandler struct {
	log     *slog.Logger
	metrics Metrics
}

func NewMemoryHandler(log *slog.Logger, metrics Metrics) *MemoryHandler {
	return &MemoryHandler{log: log, metrics: metrics}
}

func (h MemoryHandler) Handle(event Event) {
	switch event.Type {
	case MemorySampleType:
		payload, ok := event.Payload.(MemorySample)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.SetMemory(payload.RSS, payload.HeapAlloc, payload.Sessions)
	case SweepType:
		payload, ok := event.Payload.(Swept)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.AddSwept("zone", payload.Result.ZonesRemoved)
		h.metrics.AddSwept("emotion", payload.Result.EmotionsRemoved)
		h.metrics.AddSwept("rate_bucket", payload.Result.BucketsPruned)
		h.metrics.AddSwept("whisper", payload.Result.WhispersRemoved)
	}
}
