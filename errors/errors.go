package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrInvalidPayload = fmt.Errorf("invalid payload")

	// Job lifecycle
	ErrInvalidState      = fmt.Errorf("invalid job state")
	ErrJobNotFound       = fmt.Errorf("job not found")
	ErrTargetNotFound    = fmt.Errorf("target content not found")
	ErrTransientExternal = fmt.Errorf("transient external error")
	ErrTerminalJob       = fmt.Errorf("job failed permanently")
	ErrWhisperNotFound   = fmt.Errorf("whisper not found")

	// Real-time boundary
	ErrUnknownZone   = fmt.Errorf("unknown zone")
	ErrUnknownEvent  = fmt.Errorf("unknown event")
	ErrRateLimited   = fmt.Errorf("rate limited")
	ErrSessionClosed = fmt.Errorf("session closed")
	ErrSinkFull      = fmt.Errorf("session queue full")
	ErrBackpressure  = fmt.Errorf("content queue full")
	ErrInvalidToken  = fmt.Errorf("invalid token")
	ErrAuthDisabled  = fmt.Errorf("authentication disabled")

	// Admin and search
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrSearchUnavailable  = fmt.Errorf("search unavailable")
)
