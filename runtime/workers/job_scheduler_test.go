package workers

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
	"whisperwall/clock"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/errors"
	"whisperwall/infrastructure/storage"
	"whisperwall/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var schedulerStart = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type schedulerFixture struct {
	clock     *clock.Fake
	jobs      *storage.JobRepository
	whispers  *storage.WhisperRepository
	generator *mocks.MockIGenerator
	publisher *mocks.MockIReplyPublisher
	telemetry chan event.Event
	scheduler *JobScheduler
}

func newSchedulerFixture(t *testing.T) schedulerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	clk := clock.NewFake(schedulerStart)

	db, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "whisperwall.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	jobs := storage.NewJobRepository(db, log, clk)
	whispers := storage.NewWhisperRepository(db, log, clk)
	require.NoError(t, whispers.EnsureSchema(ctx))
	require.NoError(t, jobs.EnsureSchema(ctx))

	audit := mocks.NewMockIAuditLog(ctrl)
	audit.EXPECT().Record(gomock.Any()).AnyTimes()
	generator := mocks.NewMockIGenerator(ctrl)
	publisher := mocks.NewMockIReplyPublisher(ctrl)
	telemetry := make(chan event.Event, 256)

	scheduler := NewJobScheduler(log, clk, SchedulerConfig{
		PollInterval:      30 * time.Second,
		BatchSize:         5,
		Concurrency:       1,
		RetryCeiling:      3,
		RetryBackoff:      60 * time.Second,
		GenerationTimeout: time.Second,
	}, jobs, whispers, generator, publisher, audit, telemetry)

	return schedulerFixture{
		clock:     clk,
		jobs:      jobs,
		whispers:  whispers,
		generator: generator,
		publisher: publisher,
		telemetry: telemetry,
		scheduler: scheduler,
	}
}

func (f schedulerFixture) enqueue(t *testing.T, delay time.Duration) domain.Job {
	t.Helper()
	ctx := context.Background()
	w := domain.Whisper{
		ID:        uuid.NewString(),
		Content:   "Does anyone else study on the third floor just for the view?",
		Zone:      "library",
		Emotion:   "curious",
		Status:    domain.WhisperPosted,
		CreatedAt: f.clock.Now(),
		ExpiresAt: f.clock.Now().Add(24 * time.Hour),
	}
	require.NoError(t, f.whispers.Create(ctx, w))
	job, err := f.jobs.Enqueue(ctx, w.ID, w.Zone, w.Emotion, delay.Milliseconds())
	require.NoError(t, err)
	return job
}

func TestJobScheduler_RetryCeiling_EndsInError(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)

	// Given a due job whose generation always fails
	job := f.enqueue(t, 0)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GenerationResult{}, fmt.Errorf("%w: status 503", errors.ErrTransientExternal)).
		Times(3)
	f.publisher.EXPECT().PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When the first attempt fails
	req.NoError(f.scheduler.Tick(ctx))

	// Then the job is back to pending after the fixed backoff
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobPending, stored.Status)
	req.Equal(1, stored.RetryCount)
	req.Equal(schedulerStart.Add(60*time.Second), stored.RunAt)
	req.NotNil(stored.LastError)
	req.Contains(*stored.LastError, "status 503")
	target, err := f.whispers.Get(ctx, job.TargetID)
	req.NoError(err)
	req.Equal(domain.WhisperQueued, target.Status)

	// And it is not due before the backoff elapsed
	f.clock.Advance(59 * time.Second)
	req.NoError(f.scheduler.Tick(ctx))

	// When the two remaining attempts fail
	f.clock.Advance(time.Second)
	req.NoError(f.scheduler.Tick(ctx))
	f.clock.Advance(60 * time.Second)
	req.NoError(f.scheduler.Tick(ctx))

	// Then the job is flagged error with three attempts recorded
	stored, err = f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobError, stored.Status)
	req.Equal(3, stored.RetryCount)
	target, err = f.whispers.Get(ctx, job.TargetID)
	req.NoError(err)
	req.Equal(domain.WhisperFailed, target.Status)

	// And it is never fetched again
	f.clock.Advance(time.Hour)
	due, err := f.jobs.FetchDue(ctx, 5)
	req.NoError(err)
	req.Empty(due)
	req.NoError(f.scheduler.Tick(ctx))
}

func TestJobScheduler_BackoffFromFailingAttempt(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)

	// Given a job due in 2 minutes
	job := f.enqueue(t, 2*time.Minute)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.GenerationRequest) (domain.GenerationResult, error) {
			// The external call takes a while
			f.clock.Advance(5 * time.Second)
			return domain.GenerationResult{}, errors.ErrTransientExternal
		})

	// When the scheduler runs late
	failedAt := f.clock.Advance(3 * time.Minute).Add(5 * time.Second)
	req.NoError(f.scheduler.Tick(ctx))

	// Then the retry is scheduled from the moment of the failure
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobPending, stored.Status)
	req.False(stored.RunAt.Before(failedAt.Add(60 * time.Second)))
}

func TestJobScheduler_Success_PublishesReply(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	// Given a generator answering with a reply
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.GenerationRequest) (domain.GenerationResult, error) {
			req.Equal(domain.Zone("library"), r.Zone)
			req.Equal(domain.ReplyContext, r.Context)
			req.Equal("question", r.WhisperType)
			return domain.GenerationResult{Content: "Every single day."}, nil
		})
	f.publisher.EXPECT().
		PublishReply(gomock.Any(), gomock.Any(), "Every single day.").
		DoAndReturn(func(ctx context.Context, j domain.Job, content string) (domain.Whisper, error) {
			req.Equal(job.ID, j.ID)
			return domain.Whisper{ID: uuid.NewString(), Content: content}, nil
		}).
		Times(1)

	// When the scheduler ticks
	req.NoError(f.scheduler.Tick(ctx))

	// Then the job is done and the whisper reflects it
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobDone, stored.Status)
	req.Equal(0, stored.RetryCount)
	target, err := f.whispers.Get(ctx, job.TargetID)
	req.NoError(err)
	req.Equal(domain.WhisperDone, target.Status)
}

func TestJobScheduler_CancelDuringGeneration_WinsOverSuccess(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	// Given an administrator cancels while the generator is answering
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.GenerationRequest) (domain.GenerationResult, error) {
			cancelled, err := f.jobs.Cancel(ctx, job.ID)
			req.NoError(err)
			req.Equal(domain.JobCancelled, cancelled.Status)
			return domain.GenerationResult{Content: "too late"}, nil
		})
	f.publisher.EXPECT().PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When the scheduler ticks
	req.NoError(f.scheduler.Tick(ctx))

	// Then the job stays cancelled and no reply is published
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobCancelled, stored.Status)
}

func TestJobScheduler_CancelDuringGeneration_WinsOverRetry(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.GenerationRequest) (domain.GenerationResult, error) {
			_, err := f.jobs.Cancel(ctx, job.ID)
			req.NoError(err)
			return domain.GenerationResult{}, errors.ErrTransientExternal
		})

	req.NoError(f.scheduler.Tick(ctx))

	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobCancelled, stored.Status)
	req.Equal(0, stored.RetryCount)
}

func TestJobScheduler_AtCeiling_FlaggedWithoutGenerating(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	// Given a pending job that already used all its attempts
	retries := 3
	req.NoError(f.jobs.Transition(ctx, job.ID, domain.Transition{
		From: domain.JobPending, To: domain.JobRunning, At: f.clock.Now(),
	}))
	req.NoError(f.jobs.Transition(ctx, job.ID, domain.Transition{
		From: domain.JobRunning, To: domain.JobPending, At: f.clock.Now(), RetryCount: &retries,
	}))
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

	// When the scheduler ticks
	req.NoError(f.scheduler.Tick(ctx))

	// Then the job is flagged error without calling the generator
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobError, stored.Status)
	req.Equal(3, stored.RetryCount)
}

func TestJobScheduler_Tick_BoundedByBatchSize(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	for i := 0; i < 7; i++ {
		f.enqueue(t, 0)
	}
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GenerationResult{Content: "same here"}, nil).
		Times(5)
	f.publisher.EXPECT().
		PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Whisper{}, nil).
		Times(5)

	req.NoError(f.scheduler.Tick(ctx))

	pending := domain.JobPending
	left, err := f.jobs.List(ctx, &pending, 0)
	req.NoError(err)
	req.Len(left, 2)
}

func TestJobScheduler_EmitsTelemetry(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	f.enqueue(t, 0)
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(domain.GenerationResult{Content: "ok"}, nil)
	f.publisher.EXPECT().
		PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Whisper{}, nil)

	req.NoError(f.scheduler.Tick(ctx))

	var actions []domain.AuditAction
	var latencies int
	for len(f.telemetry) > 0 {
		evt := <-f.telemetry
		switch p := evt.Payload.(type) {
		case event.JobOutcome:
			actions = append(actions, p.Action)
		case event.GenerationLatency:
			req.False(p.Failed)
			latencies++
		}
	}
	req.Equal([]domain.AuditAction{domain.AuditClaimed, domain.AuditDone}, actions)
	req.Equal(1, latencies)
}

// cancelOnProcessing cancels the job the way an administrator would, right
// before the scheduler marks the whisper as processing.
type cancelOnProcessing struct {
	*storage.WhisperRepository
	cancel func()
}

func (c cancelOnProcessing) SetStatus(ctx context.Context, id string, status domain.WhisperStatus) error {
	if status == domain.WhisperProcessing && c.cancel != nil {
		c.cancel()
	}
	return c.WhisperRepository.SetStatus(ctx, id, status)
}

func TestJobScheduler_CancelRightAfterClaim_KeepsWhisperPosted(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	// Given a cancel landing between the claim and the processing status write
	whispers := cancelOnProcessing{WhisperRepository: f.whispers, cancel: func() {
		_, err := f.jobs.Cancel(ctx, job.ID)
		req.NoError(err)
		req.NoError(f.whispers.SetStatus(ctx, job.TargetID, domain.WhisperPosted))
	}}
	audit := mocks.NewMockIAuditLog(gomock.NewController(t))
	audit.EXPECT().Record(gomock.Any()).AnyTimes()
	scheduler := NewJobScheduler(slog.Default(), f.clock, SchedulerConfig{
		BatchSize:    5,
		RetryCeiling: 3,
		RetryBackoff: time.Minute,
	}, f.jobs, whispers, f.generator, f.publisher, audit, f.telemetry)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)
	f.publisher.EXPECT().PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When the scheduler ticks
	req.NoError(scheduler.Tick(ctx))

	// Then the job stays cancelled and the whisper is not left processing
	stored, err := f.jobs.Get(ctx, job.ID)
	req.NoError(err)
	req.Equal(domain.JobCancelled, stored.Status)
	target, err := f.whispers.Get(ctx, job.TargetID)
	req.NoError(err)
	req.Equal(domain.WhisperPosted, target.Status)
}

func TestJobScheduler_Run_TicksOnTheInjectedClock(t *testing.T) {
	req := require.New(t)
	f := newSchedulerFixture(t)
	job := f.enqueue(t, 0)

	// Given a generator answering at once
	generated := make(chan struct{})
	f.generator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.GenerationRequest) (domain.GenerationResult, error) {
			close(generated)
			return domain.GenerationResult{Content: "You are not the only one up here."}, nil
		})
	f.publisher.EXPECT().PublishReply(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Whisper{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.scheduler.Run(ctx) }()
	req.Eventually(func() bool { return f.clock.Tickers() == 1 }, time.Second, 5*time.Millisecond)

	// When less than the poll interval elapsed nothing is processed
	f.clock.Advance(29 * time.Second)
	select {
	case <-generated:
		req.Fail("job processed before the poll interval")
	case <-time.After(50 * time.Millisecond):
	}

	// When the poll interval is reached the due job runs
	f.clock.Advance(time.Second)
	select {
	case <-generated:
	case <-time.After(time.Second):
		req.Fail("job not processed on the poll tick")
	}
	req.Eventually(func() bool {
		stored, err := f.jobs.Get(context.Background(), job.ID)
		return err == nil && stored.Status == domain.JobDone
	}, time.Second, 5*time.Millisecond)

	// Then Run stops with its context and releases the ticker
	cancel()
	req.NoError(<-done)
	req.Equal(0, f.clock.Tickers())
}
