package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"whisperwall/domain"
	"whisperwall/errors"

	"github.com/stretchr/testify/require"
)

func TestGenerationClient_Generate(t *testing.T) {
	req := require.New(t)
	var received domain.GenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("/generate", r.URL.Path)
		req.NoError(json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"content":"  You are not alone in this.  "}`))
	}))
	defer server.Close()
	client := NewGenerationClient(slog.Default(), server.URL+"/", time.Second, 10)

	result, err := client.Generate(context.Background(), domain.GenerationRequest{
		Zone: "library", Emotion: "sadness", Context: domain.ReplyContext,
		Content: "I failed again", EmotionalTone: "heavy", WhisperType: "short",
	})

	req.NoError(err)
	req.Equal("You are not alone in this.", result.Content)
	req.Equal(domain.Zone("library"), received.Zone)
	req.Equal("reply", received.Context)
	req.Equal("heavy", received.EmotionalTone)
}

func TestGenerationClient_AlternativeField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"reply":"Same here"}`))
	}))
	defer server.Close()

	result, err := NewGenerationClient(slog.Default(), server.URL, time.Second, 10).
		Generate(context.Background(), domain.GenerationRequest{})

	require.NoError(t, err)
	require.Equal(t, "Same here", result.Content)
}

func TestGenerationClient_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{name: "server error keeps body", status: http.StatusServiceUnavailable, body: "model overloaded", contains: "status 503: model overloaded"},
		{name: "client error", status: http.StatusBadRequest, body: "bad zone", contains: "status 400"},
		{name: "empty content", status: http.StatusOK, body: `{"content":""}`, contains: "empty generated content"},
		{name: "not json", status: http.StatusOK, body: `<html>`, contains: "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewGenerationClient(slog.Default(), server.URL, time.Second, 10).
				Generate(context.Background(), domain.GenerationRequest{})

			req.ErrorIs(err, errors.ErrTransientExternal)
			req.Contains(err.Error(), tt.contains)
		})
	}
}

func TestGenerationClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := NewGenerationClient(slog.Default(), server.URL, 50*time.Millisecond, 10).
		Generate(context.Background(), domain.GenerationRequest{})

	require.ErrorIs(t, err, errors.ErrTransientExternal)
}
