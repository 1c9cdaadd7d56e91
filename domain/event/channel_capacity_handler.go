package event

import (
	"fmt"
	"log/slog"
	"whisperwall/errors"
)

// ChannelCapacityHandler handles events reporting the capacity of channels.
// Useful for detecting backpressure before the content queue starts dropping.
type ChannelCapacityHandler struct {
	log                  *slog.Logger
	metrics              Metrics
	lowCapacityThreshold int
}

func NewChannelCapacityHandler(log *slog.Logger, metrics Metrics, lowCapacityThreshold int) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log, metrics: metrics, lowCapacityThreshold: lowCapacityThreshold}
}

func (h ChannelCapacityHandler) Handle(event Event) {
	switch event.Type {
	case ChannelCapacityType:
		payload, ok := event.Payload.(ChannelCapacity)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.metrics.SetChannelUsage(payload.ChannelName, payload.Length, payload.Capacity)
		if payload.Capacity <= 0 {
			// In case of unbuffered channel
			return
		}
		capacityLeft := payload.Capacity - payload.Length
		if capacityLeft <= h.lowCapacityThreshold {
			h.log.Warn(fmt.Sprintf("Channel %s capacity left : %d", payload.ChannelName, capacityLeft))
		}
	}
}
