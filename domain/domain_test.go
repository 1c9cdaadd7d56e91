package domain

import (
	"encoding/json"
	"testing"
	"whisperwall/errors"

	"github.com/stretchr/testify/require"
)

func TestJobStatus_CanTransition(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		from, to JobStatus
		allowed  bool
	}{
		{JobPending, JobRunning, true},
		{JobPending, JobCancelled, true},
		{JobRunning, JobDone, true},
		{JobRunning, JobPending, true},
		{JobRunning, JobError, true},
		{JobRunning, JobCancelled, true},
		{JobPending, JobDone, false},
		{JobDone, JobPending, false},
		{JobError, JobCancelled, false},
		{JobCancelled, JobPending, false},
		{JobCancelled, JobDone, false},
	}
	for _, tt := range tests {
		req.Equal(tt.allowed, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestZones_Allowed(t *testing.T) {
	req := require.New(t)
	zones := NewZones([]string{" Library", "cafeteria", ""})

	req.True(zones.Allowed("library"))
	req.True(zones.Allowed("cafeteria"))
	req.False(zones.Allowed("rooftop"))
	req.Equal([]Zone{"cafeteria", "library"}, zones.List())
}

func TestDecodeJoinZone_StringAndObject(t *testing.T) {
	req := require.New(t)

	payload, err := DecodeJoinZone(json.RawMessage(`"Library"`))
	req.NoError(err)
	req.Equal("library", payload.Zone)

	payload, err = DecodeJoinZone(json.RawMessage(`{"zone":"quad"}`))
	req.NoError(err)
	req.Equal("quad", payload.Zone)

	_, err = DecodeJoinZone(json.RawMessage(`{"zone":""}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = DecodeJoinZone(json.RawMessage(`[1,2]`))
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestDecodeCreateContent_RejectsMissingContent(t *testing.T) {
	req := require.New(t)

	_, err := DecodeCreateContent(json.RawMessage(`{"zone":"library"}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	payload, err := DecodeCreateContent(json.RawMessage(`{"content":"hi","zone":"Library","emotion":"Joy"}`))
	req.NoError(err)
	req.Equal("library", payload.Zone)
	req.Equal("joy", payload.Emotion)
}

func TestValidateCreateWhisper_BlankContent(t *testing.T) {
	req := require.New(t)
	err := ValidateCreateWhisper(CreateWhisper{Content: "   ", Zone: "library"})
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestNewGenerationRequest(t *testing.T) {
	req := require.New(t)
	job := Job{Zone: "library", Emotion: "anxiety"}
	target := Whisper{Content: "Does anyone else feel lost before finals?", Emotion: "anxiety"}

	got := NewGenerationRequest(job, target)

	req.Equal(ReplyContext, got.Context)
	req.Equal(Zone("library"), got.Zone)
	req.Equal(ToneHeavy, got.EmotionalTone)
	req.Equal(TypeQuestion, got.WhisperType)
	req.Equal(target.Content, got.Content)
}

func TestNewSearchQuery(t *testing.T) {
	req := require.New(t)

	q := NewSearchQuery("exam stress --zone Library --limit 5")
	req.Equal("exam stress", q.Terms)
	req.NotNil(q.Zone)
	req.Equal(Zone("library"), *q.Zone)
	req.Equal(5, q.Limit)

	q = NewSearchQuery("lonely")
	req.Equal("lonely", q.Terms)
	req.Nil(q.Zone)
	req.Equal(DefaultSearchLimit, q.Limit)

	q = NewSearchQuery("tired --limit 1000")
	req.Equal(MaxSearchLimit, q.Limit)

	// A trailing flag without value is kept as a term
	q = NewSearchQuery("coffee --zone")
	req.Equal("coffee --zone", q.Terms)
	req.Nil(q.Zone)
}
