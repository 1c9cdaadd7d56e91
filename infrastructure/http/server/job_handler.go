package server

import (
	"fmt"
	"net/http"
	"strconv"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/errors"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	defaultJobListLimit = 50
	maxJobListLimit     = 500
)

type JobHandler struct {
	jobs contract.IJobService
}

func NewJobHandler(jobs contract.IJobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type JobResponse struct {
	ID         int64   `json:"id"`
	TargetID   string  `json:"targetId"`
	Zone       string  `json:"zone"`
	Emotion    string  `json:"emotion,omitempty"`
	Status     string  `json:"status"`
	RunAt      int64   `json:"runAt"`
	RetryCount int     `json:"retryCount"`
	Error      *string `json:"error,omitempty"`
	CreatedAt  int64   `json:"createdAt"`
	UpdatedAt  int64   `json:"updatedAt"`
}

func ToJobResponse(job domain.Job) JobResponse {
	return JobResponse{
		ID:         int64(job.ID),
		TargetID:   job.TargetID,
		Zone:       string(job.Zone),
		Emotion:    string(job.Emotion),
		Status:     string(job.Status),
		RunAt:      job.RunAt.UnixMilli(),
		RetryCount: job.RetryCount,
		Error:      job.LastError,
		CreatedAt:  job.CreatedAt.UnixMilli(),
		UpdatedAt:  job.UpdatedAt.UnixMilli(),
	}
}

// GET /api/jobs?status=&limit=
func (h *JobHandler) ListJobs(c *gin.Context) {
	var status *domain.JobStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.JobStatus(raw)
		if !s.Valid() {
			RespondError(c, http.StatusBadRequest, "invalid_status",
				fmt.Errorf("%w: unknown status %q", errors.ErrInvalidPayload, raw))
			return
		}
		status = &s
	}
	limit := defaultJobListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit",
				fmt.Errorf("%w: limit %q", errors.ErrInvalidPayload, raw))
			return
		}
		limit = min(n, maxJobListLimit)
	}
	jobs, err := h.jobs.List(c.Request.Context(), status, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": lo.Map(jobs, func(j domain.Job, _ int) JobResponse {
		return ToJobResponse(j)
	})})
}

// POST /api/jobs/:id/cancel
func (h *JobHandler) CancelJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_job_id", fmt.Errorf("%w: job id", errors.ErrInvalidPayload))
		return
	}
	job, err := h.jobs.Cancel(c.Request.Context(), domain.JobID(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": ToJobResponse(job)})
}
