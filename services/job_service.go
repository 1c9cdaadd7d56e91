package services

import (
	"context"
	"log/slog"
	"whisperwall/clock"
	"whisperwall/contract"
	"whisperwall/domain"
)

var _ contract.IJobService = (*JobService)(nil)

// JobService holds the administrative actions on reply jobs.
type JobService struct {
	log      *slog.Logger
	clock    clock.Clock
	jobs     contract.IJobStore
	whispers contract.IWhisperStore
	audit    contract.IAuditLog
}

func NewJobService(log *slog.Logger, clk clock.Clock, jobs contract.IJobStore,
	whispers contract.IWhisperStore, audit contract.IAuditLog) *JobService {
	return &JobService{log: log, clock: clk, jobs: jobs, whispers: whispers, audit: audit}
}

// Cancel stops a pending or running job. A running generation may still finish,
// its result is then discarded by the scheduler.
func (s *JobService) Cancel(ctx context.Context, id domain.JobID) (domain.Job, error) {
	job, err := s.jobs.Cancel(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if err := s.whispers.SetStatus(ctx, job.TargetID, domain.WhisperPosted); err != nil {
		s.log.Warn("Unable to reset whisper status", "whisper_id", job.TargetID, "error", err)
	}
	s.audit.Record(domain.AuditEntry{
		JobID:    job.ID,
		TargetID: job.TargetID,
		Action:   domain.AuditCancelled,
		Status:   job.Status,
		At:       s.clock.Now(),
	})
	s.log.Info("Job cancelled", "job_id", job.ID, "target_id", job.TargetID)
	return job, nil
}

// RequestReply schedules an immediate reply for an existing whisper.
func (s *JobService) RequestReply(ctx context.Context, whisperID string) (domain.Job, error) {
	w, err := s.whispers.Get(ctx, whisperID)
	if err != nil {
		return domain.Job{}, err
	}
	job, err := s.jobs.Enqueue(ctx, w.ID, w.Zone, w.Emotion, 0)
	if err != nil {
		return domain.Job{}, err
	}
	s.audit.Record(domain.AuditEntry{
		JobID:    job.ID,
		TargetID: job.TargetID,
		Action:   domain.AuditEnqueued,
		Status:   job.Status,
		Detail:   "requested",
		At:       s.clock.Now(),
	})
	return job, nil
}

func (s *JobService) List(ctx context.Context, status *domain.JobStatus, limit int) ([]domain.Job, error) {
	return s.jobs.List(ctx, status, limit)
}
