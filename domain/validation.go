package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
	"whisperwall/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateCreateWhisper(cmd CreateWhisper) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if strings.TrimSpace(cmd.Content) == "" || !utf8.ValidString(cmd.Content) {
		return fmt.Errorf("%w: empty content", errors.ErrInvalidPayload)
	}
	return nil
}

// DecodeJoinZone accepts either a bare string or {"zone": "..."}.
func DecodeJoinZone(data json.RawMessage) (JoinZonePayload, error) {
	var payload JoinZonePayload
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		payload.Zone = name
	} else if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	payload.Zone = strings.TrimSpace(strings.ToLower(payload.Zone))
	return payload, check(payload)
}

// DecodeEmotionPulse accepts either a bare string or {"emotion": "..."}.
func DecodeEmotionPulse(data json.RawMessage) (EmotionPulsePayload, error) {
	var payload EmotionPulsePayload
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		payload.Emotion = name
	} else if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	payload.Emotion = strings.TrimSpace(strings.ToLower(payload.Emotion))
	return payload, check(payload)
}

func DecodeCreateContent(data json.RawMessage) (CreateContentPayload, error) {
	var payload CreateContentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	payload.Zone = strings.TrimSpace(strings.ToLower(payload.Zone))
	payload.Emotion = strings.TrimSpace(strings.ToLower(payload.Emotion))
	return payload, check(payload)
}

// DecodeAuthenticate accepts either a bare token string or {"token": "..."}.
func DecodeAuthenticate(data json.RawMessage) (AuthenticatePayload, error) {
	var payload AuthenticatePayload
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		payload.Token = token
	} else if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return payload, check(payload)
}

func check(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
