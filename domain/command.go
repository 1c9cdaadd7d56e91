package domain

import (
	"encoding/json"
	"time"
)

// Inbound real-time event names.
const (
	InboundJoinZone      = "join-zone"
	InboundCreateContent = "create-content"
	InboundEmotionPulse  = "emotion-pulse"
	InboundAuthenticate  = "authenticate"
)

// InboundEvent is one frame received from a live session, decoded lazily by the registry.
type InboundEvent struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

type JoinZonePayload struct {
	Zone string `json:"zone" validate:"required,max=64"`
}

type EmotionPulsePayload struct {
	Emotion string `json:"emotion" validate:"required,max=32"`
}

type CreateContentPayload struct {
	Content string `json:"content" validate:"required,max=1000"`
	Zone    string `json:"zone" validate:"required,max=64"`
	Emotion string `json:"emotion" validate:"omitempty,max=32"`
}

type AuthenticatePayload struct {
	Token string `json:"token" validate:"required"`
}

// CreateWhisper asks for a new whisper, from a live session or from the REST API.
type CreateWhisper struct {
	SessionID SessionID
	IP        string
	Content   string `validate:"required,max=1000"`
	Zone      Zone   `validate:"required"`
	Emotion   Emotion
	At        time.Time
}
