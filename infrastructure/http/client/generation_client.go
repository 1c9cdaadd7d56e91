package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/errors"

	"golang.org/x/time/rate"
)

var _ contract.IGenerator = (*GenerationClient)(nil)

// maxErrorBody bounds how much of a failed response ends up in last_error.
const maxErrorBody = 512

type generationResponse struct {
	Content string `json:"content"`
	Reply   string `json:"reply"`
	Text    string `json:"text"`
}

// GenerationClient calls POST {baseURL}/generate. Any failure is transient,
// the scheduler decides whether to retry.
type GenerationClient struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewGenerationClient(log *slog.Logger, baseURL string, timeout time.Duration, ratePerSec int) *GenerationClient {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return &GenerationClient{
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

func (c *GenerationClient) Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.GenerationResult{}, fmt.Errorf("%w: %v", errors.ErrTransientExternal, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return domain.GenerationResult{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return domain.GenerationResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("%w: %v", errors.ErrTransientExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.GenerationResult{}, fmt.Errorf("%w: status %d: %s",
			errors.ErrTransientExternal, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var decoded generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GenerationResult{}, fmt.Errorf("%w: decode response: %v", errors.ErrTransientExternal, err)
	}
	content := firstNonEmpty(decoded.Content, decoded.Reply, decoded.Text)
	if content == "" {
		return domain.GenerationResult{}, fmt.Errorf("%w: empty generated content", errors.ErrTransientExternal)
	}
	c.log.Debug("Reply generated", "zone", req.Zone, "whisper_type", req.WhisperType)
	return domain.GenerationResult{Content: content}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
