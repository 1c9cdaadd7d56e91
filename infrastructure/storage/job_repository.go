package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"whisperwall/clock"
	"whisperwall/domain"
	errs "whisperwall/errors"
)

const jobsDDL = `CREATE TABLE IF NOT EXISTS jobs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	target_id   TEXT NOT NULL,
	zone        TEXT NOT NULL,
	emotion     TEXT NOT NULL DEFAULT '',
	run_at      INTEGER NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT,
	retry_count INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
)`

const jobsDueIndex = `CREATE INDEX IF NOT EXISTS idx_jobs_status_run_at ON jobs(status, run_at)`

const jobColumns = `id, target_id, zone, emotion, run_at, status, error, retry_count, created_at, updated_at`

// JobRepository is the durable queue of reply jobs.
type JobRepository struct {
	mu    sync.Mutex
	db    *sql.DB
	log   *slog.Logger
	clock clock.Clock
}

func NewJobRepository(db *sql.DB, log *slog.Logger, clk clock.Clock) *JobRepository {
	return &JobRepository{db: db, log: log, clock: clk}
}

// EnsureSchema is safe to call repeatedly and from several goroutines.
func (r *JobRepository) EnsureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ensureTable(ctx, r.db, "jobs", jobsDDL, jobsDueIndex)
}

// Enqueue inserts a pending job due in delayMs and flags the target whisper as queued,
// both in one transaction. An unknown target fails with ErrTargetNotFound.
func (r *JobRepository) Enqueue(ctx context.Context, targetID string, zone domain.Zone,
	emotion domain.Emotion, delayMs int64) (domain.Job, error) {
	if delayMs < 0 {
		delayMs = 0
	}
	now := r.clock.Now()
	runAt := now.UnixMilli() + delayMs

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Job{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM whispers WHERE id=?`, targetID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Job{}, fmt.Errorf("%w: %s", errs.ErrTargetNotFound, targetID)
	}
	if err != nil {
		return domain.Job{}, fmt.Errorf("checking target %s: %w", targetID, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO jobs(target_id, zone, emotion, run_at, status, retry_count, created_at, updated_at)
		 VALUES(?,?,?,?,?,0,?,?)`,
		targetID, string(zone), string(emotion), runAt, string(domain.JobPending),
		now.UnixMilli(), now.UnixMilli(),
	)
	if err != nil {
		return domain.Job{}, fmt.Errorf("inserting job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Job{}, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE whispers SET status=? WHERE id=?`,
		string(domain.WhisperQueued), targetID); err != nil {
		return domain.Job{}, fmt.Errorf("flagging whisper %s as queued: %w", targetID, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Job{}, err
	}

	return domain.Job{
		ID:        domain.JobID(id),
		TargetID:  targetID,
		Zone:      zone,
		Emotion:   emotion,
		RunAt:     fromMillis(runAt),
		Status:    domain.JobPending,
		CreatedAt: fromMillis(now.UnixMilli()),
		UpdatedAt: fromMillis(now.UnixMilli()),
	}, nil
}

// FetchDue returns at most limit pending jobs whose run_at has passed, oldest first.
func (r *JobRepository) FetchDue(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status=? AND run_at <= ?
		 ORDER BY run_at ASC, id ASC
		 LIMIT ?`,
		string(domain.JobPending), r.clock.Now().UnixMilli(), limit)
	if err != nil {
		return nil, fmt.Errorf("fetching due jobs: %w", err)
	}
	return scanJobs(rows)
}

// Transition applies t only if the job is still in t.From, so a concurrent
// cancel always wins over a late scheduler write.
func (r *JobRepository) Transition(ctx context.Context, id domain.JobID, t domain.Transition) error {
	if !t.From.CanTransition(t.To) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidState, t.From, t.To)
	}
	at := t.At
	if at.IsZero() {
		at = r.clock.Now()
	}

	var runAt, retryCount sql.NullInt64
	if t.RunAt != nil {
		runAt = sql.NullInt64{Int64: t.RunAt.UnixMilli(), Valid: true}
	}
	if t.RetryCount != nil {
		retryCount = sql.NullInt64{Int64: int64(*t.RetryCount), Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET
			status=?,
			updated_at=?,
			run_at=COALESCE(?, run_at),
			retry_count=COALESCE(?, retry_count),
			error=COALESCE(?, error)
		 WHERE id=? AND status=?`,
		string(t.To), at.UnixMilli(), runAt, retryCount, nullString(t.LastError),
		int64(id), string(t.From))
	if err != nil {
		return fmt.Errorf("transition job %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		current, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: job %d is %s, expected %s", errs.ErrInvalidState, id, current.Status, t.From)
	}
	return nil
}

// Cancel is allowed from pending or running only.
func (r *JobRepository) Cancel(ctx context.Context, id domain.JobID) (domain.Job, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET status=?, updated_at=? WHERE id=? AND status IN (?, ?)`,
		string(domain.JobCancelled), r.clock.Now().UnixMilli(), int64(id),
		string(domain.JobPending), string(domain.JobRunning))
	if err != nil {
		return domain.Job{}, fmt.Errorf("cancel job %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	job, err := r.Get(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if n == 0 {
		return job, fmt.Errorf("%w: job %d is %s", errs.ErrInvalidState, id, job.Status)
	}
	return job, nil
}

func (r *JobRepository) Get(ctx context.Context, id domain.JobID) (domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id=?`, int64(id))
	if err != nil {
		return domain.Job{}, fmt.Errorf("reading job %d: %w", id, err)
	}
	jobs, err := scanJobs(rows)
	if err != nil {
		return domain.Job{}, err
	}
	if len(jobs) == 0 {
		return domain.Job{}, fmt.Errorf("%w: %d", errs.ErrJobNotFound, id)
	}
	return jobs[0], nil
}

// List returns the most recent jobs first, optionally filtered by status.
func (r *JobRepository) List(ctx context.Context, status *domain.JobStatus, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	var (
		rows *sql.Rows
		err  error
	)
	if status != nil {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+jobColumns+` FROM jobs WHERE status=? ORDER BY id DESC LIMIT ?`, string(*status), limit)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+jobColumns+` FROM jobs ORDER BY id DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return scanJobs(rows)
}

func scanJobs(rows *sql.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var (
			job                         domain.Job
			id, runAt, createdAt, updAt int64
			zone, emotion, status       string
			lastError                   sql.NullString
		)
		if err := rows.Scan(&id, &job.TargetID, &zone, &emotion, &runAt, &status,
			&lastError, &job.RetryCount, &createdAt, &updAt); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		job.ID = domain.JobID(id)
		job.Zone = domain.Zone(zone)
		job.Emotion = domain.Emotion(emotion)
		job.Status = domain.JobStatus(status)
		job.RunAt = fromMillis(runAt)
		job.LastError = fromNullString(lastError)
		job.CreatedAt = fromMillis(createdAt)
		job.UpdatedAt = fromMillis(updAt)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
