//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"whisperwall/domain"
	"whisperwall/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// SessionSink is the outbound queue of one live session.
// Close asks the transport to drop the connection.
type SessionSink interface {
	EventSink
	Close()
}

type IBroadcaster interface {
	BroadcastGlobal(ctx context.Context, e event.DomainEvent) error
	BroadcastZone(ctx context.Context, zone domain.Zone, e event.DomainEvent) error
}

type IRegistry interface {
	IBroadcaster
	Connect(ctx context.Context, id domain.SessionID, ip string, sink SessionSink) error
	Disconnect(ctx context.Context, id domain.SessionID) error
	Handle(ctx context.Context, id domain.SessionID, in domain.InboundEvent) error
	Snapshot(ctx context.Context) (domain.RegistrySnapshot, error)
	Sweep(ctx context.Context) (domain.SweepResult, error)
}

type IJobStore interface {
	EnsureSchema(ctx context.Context) error
	Enqueue(ctx context.Context, targetID string, zone domain.Zone, emotion domain.Emotion, delayMs int64) (domain.Job, error)
	FetchDue(ctx context.Context, limit int) ([]domain.Job, error)
	Transition(ctx context.Context, id domain.JobID, t domain.Transition) error
	Cancel(ctx context.Context, id domain.JobID) (domain.Job, error)
	Get(ctx context.Context, id domain.JobID) (domain.Job, error)
	List(ctx context.Context, status *domain.JobStatus, limit int) ([]domain.Job, error)
}

type IWhisperStore interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, w domain.Whisper) error
	Get(ctx context.Context, id string) (domain.Whisper, error)
	SetStatus(ctx context.Context, id string, status domain.WhisperStatus) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// IAuditLog never fails its caller: Record swallows and logs write errors.
type IAuditLog interface {
	Record(entry domain.AuditEntry)
	List(limit int) ([]domain.AuditEntry, error)
}

// IWhisperIndex is the full-text index over whisper content. Search returns ids, best match first.
type IWhisperIndex interface {
	Index(w domain.Whisper) error
	Delete(ids ...string) error
	Search(ctx context.Context, q domain.SearchQuery) ([]string, error)
}

type IGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error)
}

type ICensor interface {
	Censor(original string) (string, []string)
}

type IReplyPublisher interface {
	PublishReply(ctx context.Context, job domain.Job, content string) (domain.Whisper, error)
}

type IWhisperService interface {
	IReplyPublisher
	Create(ctx context.Context, cmd domain.CreateWhisper) (domain.Whisper, *domain.Job, error)
	Get(ctx context.Context, id string) (domain.Whisper, error)
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.Whisper, error)
}

type IJobService interface {
	Cancel(ctx context.Context, id domain.JobID) (domain.Job, error)
	RequestReply(ctx context.Context, whisperID string) (domain.Job, error)
	List(ctx context.Context, status *domain.JobStatus, limit int) ([]domain.Job, error)
}

type IMemoryProbe interface {
	Sample() (domain.MemoryUsage, error)
}

// Random is the source of the reply coin flip and delay draw.
type Random interface {
	Float64() float64
	Int63n(n int64) int64
}
