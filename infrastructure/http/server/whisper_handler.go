package server

import (
	"fmt"
	"net/http"
	"strings"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/errors"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type WhisperHandler struct {
	whispers contract.IWhisperService
	jobs     contract.IJobService
}

func NewWhisperHandler(whispers contract.IWhisperService, jobs contract.IJobService) *WhisperHandler {
	return &WhisperHandler{whispers: whispers, jobs: jobs}
}

type createWhisperRequest struct {
	Content string `json:"content"`
	Zone    string `json:"zone"`
	Emotion string `json:"emotion"`
}

type createWhisperResponse struct {
	Whisper event.WhisperPayload `json:"whisper"`
	Job     *JobResponse         `json:"job,omitempty"`
}

// POST /api/whispers
func (h *WhisperHandler) CreateWhisper(c *gin.Context) {
	var body createWhisperRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", errors.ErrInvalidPayload)
		return
	}
	whisper, job, err := h.whispers.Create(c.Request.Context(), domain.CreateWhisper{
		IP:      c.ClientIP(),
		Content: body.Content,
		Zone:    domain.Zone(strings.TrimSpace(strings.ToLower(body.Zone))),
		Emotion: domain.Emotion(strings.TrimSpace(strings.ToLower(body.Emotion))),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	res := createWhisperResponse{Whisper: event.ToWhisperPayload(whisper)}
	if job != nil {
		view := ToJobResponse(*job)
		res.Job = &view
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/whispers/:id
func (h *WhisperHandler) GetWhisper(c *gin.Context) {
	whisper, err := h.whispers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"whisper": event.ToWhisperPayload(whisper)})
}

// POST /api/whispers/:id/reply
func (h *WhisperHandler) RequestReply(c *gin.Context) {
	job, err := h.jobs.RequestReply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job": ToJobResponse(job)})
}

// GET /api/search?q=exam+--zone+library
func (h *WhisperHandler) Search(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("q"))
	if raw == "" {
		RespondError(c, http.StatusBadRequest, "invalid_payload", fmt.Errorf("%w: missing q", errors.ErrInvalidPayload))
		return
	}
	whispers, err := h.whispers.Search(c.Request.Context(), domain.NewSearchQuery(raw))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"whispers": lo.Map(whispers, func(w domain.Whisper, _ int) event.WhisperPayload {
		return event.ToWhisperPayload(w)
	})})
}
