package domain

import (
	"strings"
	"unicode/utf8"
)

type Emotion string

const (
	ToneUplifting = "uplifting"
	ToneHeavy     = "heavy"
	ToneTender    = "tender"
	ToneNeutral   = "neutral"

	TypeQuestion   = "question"
	TypeConfession = "confession"
	TypeVent       = "vent"
	TypeShort      = "short"
)

var emotionTones = map[Emotion]string{
	"joy":        ToneUplifting,
	"excitement": ToneUplifting,
	"hope":       ToneUplifting,
	"gratitude":  ToneUplifting,
	"sadness":    ToneHeavy,
	"anger":      ToneHeavy,
	"anxiety":    ToneHeavy,
	"fear":       ToneHeavy,
	"loneliness": ToneHeavy,
	"love":       ToneTender,
	"nostalgia":  ToneTender,
	"crush":      ToneTender,
}

// EmotionalTone groups an emotion tag into the tone the reply generator expects.
func EmotionalTone(emotion Emotion) string {
	if tone, ok := emotionTones[Emotion(strings.ToLower(string(emotion)))]; ok {
		return tone
	}
	return ToneNeutral
}

// WhisperType is a coarse shape of the content, used to steer the reply.
func WhisperType(content string, emotion Emotion) string {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasSuffix(trimmed, "?"):
		return TypeQuestion
	case utf8.RuneCountInString(trimmed) < 40:
		return TypeShort
	case EmotionalTone(emotion) == ToneHeavy:
		return TypeVent
	default:
		return TypeConfession
	}
}
