package event

import (
	"time"
	"whisperwall/domain"
)

type Name string

// Outbound real-time event names.
const (
	ZoneActivityUpdateName Name = "zone-activity-update"
	EmotionPulseUpdateName Name = "emotion-pulse-update"
	NewContentName         Name = "new-content"
	ZoneContentName        Name = "zone-content"
	ReauthenticateName     Name = "reauthenticate"
)

// DomainEvent is anything the registry can deliver to a live session.
type DomainEvent interface {
	EventName() Name
}

// Envelope is the wire frame written to a session.
type Envelope struct {
	Event Name        `json:"event"`
	Data  DomainEvent `json:"data,omitempty"`
}

func ToEnvelope(e DomainEvent) Envelope {
	return Envelope{Event: e.EventName(), Data: e}
}

type Activity struct {
	Users        int   `json:"users"`
	LastActivity int64 `json:"lastActivity"`
}

type ZoneActivityUpdate struct {
	Zone        domain.Zone `json:"zone"`
	Activity    Activity    `json:"activity"`
	TotalActive int         `json:"totalActive"`
}

func (ZoneActivityUpdate) EventName() Name { return ZoneActivityUpdateName }

type Pulse struct {
	Count     int   `json:"count"`
	LastPulse int64 `json:"lastPulse"`
}

type EmotionPulseUpdate struct {
	Emotion     domain.Emotion `json:"emotion"`
	Pulse       Pulse          `json:"pulse"`
	TotalPulses int            `json:"totalPulses"`
}

func (EmotionPulseUpdate) EventName() Name { return EmotionPulseUpdateName }

// WhisperPayload is the public view of a whisper.
type WhisperPayload struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Zone      domain.Zone    `json:"zone"`
	Emotion   domain.Emotion `json:"emotion,omitempty"`
	Status    string         `json:"status"`
	IsReply   bool           `json:"isReply"`
	ParentID  *string        `json:"parentId,omitempty"`
	CreatedAt int64          `json:"createdAt"`
}

func ToWhisperPayload(w domain.Whisper) WhisperPayload {
	return WhisperPayload{
		ID:        w.ID,
		Content:   w.Content,
		Zone:      w.Zone,
		Emotion:   w.Emotion,
		Status:    string(w.Status),
		IsReply:   w.IsReply,
		ParentID:  w.ParentID,
		CreatedAt: w.CreatedAt.UnixMilli(),
	}
}

// NewContent is delivered to every session.
type NewContent struct {
	WhisperPayload
}

func (NewContent) EventName() Name { return NewContentName }

// ZoneContent is delivered only to sessions joined to the whisper's zone.
type ZoneContent struct {
	WhisperPayload
}

func (ZoneContent) EventName() Name { return ZoneContentName }

type Reauthenticate struct {
	At int64 `json:"at"`
}

func (Reauthenticate) EventName() Name { return ReauthenticateName }

func Millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
