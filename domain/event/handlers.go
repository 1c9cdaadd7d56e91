//go:generate go run go.uber.org/mock/mockgen -source=handlers.go -destination=../../mocks/mock_metrics.go -package=mocks
package event

import (
	"time"
	"whisperwall/domain"
)

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

// Metrics is the sink handlers publish to.
type Metrics interface {
	IncWorkerRestart(worker string)
	IncDrop(reason DropReason, eventName string)
	IncJobOutcome(action domain.AuditAction)
	IncCensored(words int)
	SetChannelUsage(name string, length, capacity int)
	SetMemory(rss, heapAlloc uint64, sessions int)
	ObserveGeneration(latency time.Duration, failed bool)
	AddSwept(kind string, n int)
}
