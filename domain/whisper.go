package domain

import "time"

type WhisperStatus string

const (
	WhisperPosted     WhisperStatus = "posted"
	WhisperQueued     WhisperStatus = "queued"
	WhisperProcessing WhisperStatus = "processing"
	WhisperDone       WhisperStatus = "done"
	WhisperFailed     WhisperStatus = "failed"
)

// Whisper is an anonymous post. Replies carry the id of the whisper they answer.
type Whisper struct {
	ID        string
	Content   string
	Zone      Zone
	Emotion   Emotion
	Status    WhisperStatus
	ParentID  *string
	IsReply   bool
	Language  string
	CreatedAt time.Time
	ExpiresAt time.Time
}
