package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	errs "whisperwall/errors"

	"golang.org/x/sync/errgroup"
)

var _ contract.Worker = (*JobScheduler)(nil)

type SchedulerConfig struct {
	PollInterval      time.Duration
	BatchSize         int
	Concurrency       int
	RetryCeiling      int
	RetryBackoff      time.Duration
	GenerationTimeout time.Duration
}

// JobScheduler polls the job store and runs due reply jobs.
// Every state change is a compare-and-set, so a job cancelled while its
// generation call is in flight stays cancelled.
type JobScheduler struct {
	log           *slog.Logger
	clock         clock.Clock
	cfg           SchedulerConfig
	jobs          contract.IJobStore
	whispers      contract.IWhisperStore
	generator     contract.IGenerator
	publisher     contract.IReplyPublisher
	audit         contract.IAuditLog
	telemetryChan chan<- event.Event
}

func NewJobScheduler(log *slog.Logger, clk clock.Clock, cfg SchedulerConfig,
	jobs contract.IJobStore, whispers contract.IWhisperStore,
	generator contract.IGenerator, publisher contract.IReplyPublisher,
	audit contract.IAuditLog, telemetryChan chan<- event.Event) *JobScheduler {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.RetryCeiling <= 0 {
		cfg.RetryCeiling = 3
	}
	return &JobScheduler{
		log:           log,
		clock:         clk,
		cfg:           cfg,
		jobs:          jobs,
		whispers:      whispers,
		generator:     generator,
		publisher:     publisher,
		audit:         audit,
		telemetryChan: telemetryChan,
	}
}

func (w *JobScheduler) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.log.Info("Job scheduler started", "poll_interval", w.cfg.PollInterval.String(),
		"batch_size", w.cfg.BatchSize, "retry_ceiling", w.cfg.RetryCeiling)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping job scheduler")
			return nil
		case <-ticker.C():
			if err := w.Tick(ctx); err != nil {
				w.log.Error("Job scheduler tick failed", "error", err)
			}
		}
	}
}

// Tick fetches at most BatchSize due jobs and processes them, Concurrency at a time.
// A failing job never aborts the others.
func (w *JobScheduler) Tick(ctx context.Context) error {
	jobs, err := w.jobs.FetchDue(ctx, w.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("fetch due jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}
	w.log.Debug("Due jobs fetched", "count", len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			w.process(gCtx, job)
			return nil
		})
	}
	return g.Wait()
}

func (w *JobScheduler) process(ctx context.Context, job domain.Job) {
	claim := domain.Transition{From: domain.JobPending, To: domain.JobRunning, At: w.clock.Now()}
	if err := w.jobs.Transition(ctx, job.ID, claim); err != nil {
		if errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrJobNotFound) {
			w.log.Debug("Job no longer pending, skipped", "job_id", job.ID)
			return
		}
		w.log.Error("Unable to claim job", "job_id", job.ID, "error", err)
		return
	}
	w.record(job, domain.AuditClaimed, domain.JobRunning, "")

	if job.RetryCount >= w.cfg.RetryCeiling {
		w.fail(ctx, job, job.RetryCount, "retry ceiling reached")
		return
	}
	w.setWhisperStatus(ctx, job.TargetID, domain.WhisperProcessing)
	// A cancel landing between the claim and the status write already reset the whisper.
	if current, err := w.jobs.Get(ctx, job.ID); err == nil && current.Status != domain.JobRunning {
		w.log.Info("Job changed after claim, skipped", "job_id", job.ID, "status", current.Status)
		w.setWhisperStatus(ctx, job.TargetID, domain.WhisperPosted)
		return
	}

	target, err := w.whispers.Get(ctx, job.TargetID)
	if err != nil {
		if errors.Is(err, errs.ErrWhisperNotFound) {
			w.fail(ctx, job, job.RetryCount+1, err.Error())
			return
		}
		w.retryOrFail(ctx, job, err)
		return
	}

	result, err := w.generate(ctx, job, target)
	if err != nil {
		w.retryOrFail(ctx, job, err)
		return
	}

	done := domain.Transition{From: domain.JobRunning, To: domain.JobDone, At: w.clock.Now()}
	if err := w.jobs.Transition(ctx, job.ID, done); err != nil {
		w.superseded(job, err, "reply discarded")
		return
	}
	if _, err := w.publisher.PublishReply(ctx, job, result.Content); err != nil {
		w.log.Error("Unable to publish generated reply", "job_id", job.ID, "error", err)
	}
	w.setWhisperStatus(ctx, job.TargetID, domain.WhisperDone)
	w.record(job, domain.AuditDone, domain.JobDone, "")
	w.log.Info("Reply job done", "job_id", job.ID, "target_id", job.TargetID)
}

func (w *JobScheduler) generate(ctx context.Context, job domain.Job, target domain.Whisper) (domain.GenerationResult, error) {
	if w.cfg.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.GenerationTimeout)
		defer cancel()
	}
	start := time.Now()
	result, err := w.generator.Generate(ctx, domain.NewGenerationRequest(job, target))
	w.emit(event.New(event.GenerationLatencyType, event.GenerationLatency{
		JobID:   job.ID,
		Latency: time.Since(start),
		Failed:  err != nil,
	}))
	return result, err
}

// retryOrFail puts the job back to pending after the fixed backoff while the
// attempt count stays below the ceiling, and flags it error otherwise.
func (w *JobScheduler) retryOrFail(ctx context.Context, job domain.Job, cause error) {
	retries := job.RetryCount + 1
	lastError := cause.Error()
	if retries >= w.cfg.RetryCeiling {
		w.fail(ctx, job, retries, lastError)
		return
	}

	now := w.clock.Now()
	runAt := now.Add(w.cfg.RetryBackoff)
	retry := domain.Transition{
		From:       domain.JobRunning,
		To:         domain.JobPending,
		At:         now,
		RunAt:      &runAt,
		RetryCount: &retries,
		LastError:  &lastError,
	}
	if err := w.jobs.Transition(ctx, job.ID, retry); err != nil {
		w.superseded(job, err, "retry dropped")
		return
	}
	w.setWhisperStatus(ctx, job.TargetID, domain.WhisperQueued)
	w.record(job, domain.AuditRetry, domain.JobPending, lastError)
	w.log.Warn("Reply job failed, retry scheduled", "job_id", job.ID,
		"retry_count", retries, "run_at", runAt, "error", lastError)
}

func (w *JobScheduler) fail(ctx context.Context, job domain.Job, retries int, lastError string) {
	failed := domain.Transition{
		From:       domain.JobRunning,
		To:         domain.JobError,
		At:         w.clock.Now(),
		RetryCount: &retries,
		LastError:  &lastError,
	}
	if err := w.jobs.Transition(ctx, job.ID, failed); err != nil {
		w.superseded(job, err, "failure not recorded")
		return
	}
	w.setWhisperStatus(ctx, job.TargetID, domain.WhisperFailed)
	w.record(job, domain.AuditError, domain.JobError, lastError)
	w.log.Error("Reply job failed permanently", "job_id", job.ID,
		"retry_count", retries, "error", fmt.Errorf("%w: %s", errs.ErrTerminalJob, lastError))
}

// superseded handles a lost compare-and-set, most often an administrative cancel.
func (w *JobScheduler) superseded(job domain.Job, err error, outcome string) {
	if errors.Is(err, errs.ErrInvalidState) {
		w.log.Info("Job changed while running, "+outcome, "job_id", job.ID)
		return
	}
	w.log.Error("Unable to update job", "job_id", job.ID, "error", err)
}

func (w *JobScheduler) setWhisperStatus(ctx context.Context, id string, status domain.WhisperStatus) {
	if err := w.whispers.SetStatus(ctx, id, status); err != nil {
		w.log.Warn("Unable to reflect job state on whisper", "whisper_id", id, "status", status, "error", err)
	}
}

func (w *JobScheduler) record(job domain.Job, action domain.AuditAction, status domain.JobStatus, detail string) {
	w.audit.Record(domain.AuditEntry{
		JobID:    job.ID,
		TargetID: job.TargetID,
		Action:   action,
		Status:   status,
		Detail:   detail,
		At:       w.clock.Now(),
	})
	w.emit(event.New(event.JobOutcomeType, event.JobOutcome{JobID: job.ID, Action: action}))
}

func (w *JobScheduler) emit(evt event.Event) {
	if w.telemetryChan == nil {
		return
	}
	select {
	case w.telemetryChan <- evt:
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}
