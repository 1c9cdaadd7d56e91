package event

import (
	"time"
	"whisperwall/domain"
)

type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	DropType                Type = "DROP"
	JobOutcomeType          Type = "JOB_OUTCOME"
	MemorySampleType        Type = "MEMORY_SAMPLE"
	CensorshipHitType       Type = "CENSORSHIP_HIT"
	GenerationLatencyType   Type = "GENERATION_LATENCY"
	SweepType               Type = "SWEEP"
)

// Event carries a technical (telemetry) payload. It never reaches clients.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type DropReason string

const (
	DropRateLimit    DropReason = "rate_limit"
	DropValidation   DropReason = "validation"
	DropDelivery     DropReason = "delivery"
	DropBackpressure DropReason = "backpressure"
)

// Dropped records a real-time event that was discarded without telling the sender.
type Dropped struct {
	Reason    DropReason
	EventName string
	SessionID domain.SessionID
}

type JobOutcome struct {
	JobID  domain.JobID
	Action domain.AuditAction
}

type MemorySample struct {
	RSS       uint64
	HeapAlloc uint64
	Sessions  int
}

type Censored struct {
	WhisperID string
	Words     []string
}

type GenerationLatency struct {
	JobID   domain.JobID
	Latency time.Duration
	Failed  bool
}

type Swept struct {
	Result domain.SweepResult
}
