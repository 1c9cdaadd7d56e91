package server

import (
	"errors"
	"net/http"
	errs "whisperwall/errors"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid_payload"
	case errors.Is(err, errs.ErrUnknownZone):
		return http.StatusBadRequest, "unknown_zone"
	case errors.Is(err, errs.ErrWhisperNotFound), errors.Is(err, errs.ErrTargetNotFound):
		return http.StatusNotFound, "whisper_not_found"
	case errors.Is(err, errs.ErrJobNotFound):
		return http.StatusNotFound, "job_not_found"
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, "invalid_state"
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, errs.ErrAuthDisabled):
		return http.StatusNotFound, "auth_disabled"
	case errors.Is(err, errs.ErrSearchUnavailable):
		return http.StatusServiceUnavailable, "search_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func respondDomainError(c *gin.Context, err error) {
	status, code := statusOf(err)
	RespondError(c, status, code, err)
}
