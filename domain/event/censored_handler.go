package event

import (
	"log/slog"
	"sync"
	"whisperwall/errors"
)

// CensoredHandler keeps a hit count per masked word, for moderation reviews.
type CensoredHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	metrics Metrics
	hit     map[string]uint64
}

func NewCensoredHandler(log *slog.Logger, metrics Metrics) *CensoredHandler {
	return &CensoredHandler{
		log:     log,
		metrics: metrics,
		hit:     make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(event Event) {
	switch event.Type {
	case CensorshipHitType:
		payload, ok := event.Payload.(Censored)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, word := range payload.Words {
			h.hit[word]++
		}
		h.metrics.IncCensored(len(payload.Words))
		h.log.Debug("Whisper censored", "whisper_id", payload.WhisperID, "words", len(payload.Words))
	}
}

func (h *CensoredHandler) Hits(word string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hit[word]
}
