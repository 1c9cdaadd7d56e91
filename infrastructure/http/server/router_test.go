package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"whisperwall/auth"
	"whisperwall/clock"
	"whisperwall/domain"
	"whisperwall/errors"
	"whisperwall/mocks"
	"whisperwall/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

const operatorPassword = "operator-pass"

var operatorHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword(operatorPassword)
	if err != nil {
		panic(err)
	}
	return hash
})

type routerFixture struct {
	whispers *mocks.MockIWhisperService
	jobs     *mocks.MockIJobService
	registry *mocks.MockIRegistry
	router   *gin.Engine
}

func newRouterFixture(t *testing.T, tokens *auth.TokenManager, limiter *ratelimit.FixedWindow) routerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := routerFixture{
		whispers: mocks.NewMockIWhisperService(ctrl),
		jobs:     mocks.NewMockIJobService(ctrl),
		registry: mocks.NewMockIRegistry(ctrl),
	}
	var login *auth.AdminLogin
	if tokens != nil {
		login = auth.NewAdminLogin(tokens, operatorHash(), time.Hour)
	}
	f.router = NewRouter(RouterConfig{
		AllowedOrigins: []string{"http://localhost:3000"},
		Clock:          clock.NewFake(now),
		CreateLimiter:  limiter,
		Tokens:         tokens,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("whisperwall_up 1\n"))
		}),
		WhisperHandler: NewWhisperHandler(f.whispers, f.jobs),
		JobHandler:     NewJobHandler(f.jobs),
		ZoneHandler:    NewZoneHandler(domain.NewZones([]string{"library", "quad"}), f.registry),
		AdminHandler:   NewAdminHandler(login),
	})
	return f
}

func (f routerFixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_CreateWhisper(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	job := domain.Job{ID: 7, TargetID: "w-1", Zone: "library", Status: domain.JobPending, RunAt: now.Add(3 * time.Minute)}

	// Given a create that also schedules a reply
	f.whispers.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, cmd domain.CreateWhisper) (domain.Whisper, *domain.Job, error) {
			req.Equal(domain.Zone("library"), cmd.Zone)
			req.Equal(domain.Emotion("anxious"), cmd.Emotion)
			req.Equal("exam tomorrow?", cmd.Content)
			return domain.Whisper{ID: "w-1", Content: cmd.Content, Zone: cmd.Zone, Status: domain.WhisperQueued, CreatedAt: now}, &job, nil
		})

	// When posting with mixed case and padding
	rec := f.do(http.MethodPost, "/api/whispers", `{"content":"exam tomorrow?","zone":" Library ","emotion":"Anxious"}`)

	// Then the whisper and its job are returned
	req.Equal(http.StatusCreated, rec.Code)
	body := decode(t, rec)
	req.Equal("w-1", body["whisper"].(map[string]any)["id"])
	req.Equal("queued", body["whisper"].(map[string]any)["status"])
	req.Equal(float64(7), body["job"].(map[string]any)["id"])
	req.Equal(float64(now.Add(3*time.Minute).UnixMilli()), body["job"].(map[string]any)["runAt"])
}

func TestRouter_CreateWhisperErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid payload", fmt.Errorf("%w: empty content", errors.ErrInvalidPayload), http.StatusBadRequest},
		{"unknown zone", fmt.Errorf("%w: %q", errors.ErrUnknownZone, "moon"), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newRouterFixture(t, nil, nil)
			f.whispers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Whisper{}, nil, tt.err)

			rec := f.do(http.MethodPost, "/api/whispers", `{"content":"x","zone":"moon"}`)

			req.Equal(tt.code, rec.Code)
		})
	}
}

func TestRouter_CreateWhisperMalformedBody(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)

	rec := f.do(http.MethodPost, "/api/whispers", `{"content":`)

	req.Equal(http.StatusBadRequest, rec.Code)
	req.Equal("invalid_payload", decode(t, rec)["error"].(map[string]any)["code"])
}

func TestRouter_CreateWhisperRateLimited(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, ratelimit.NewFixedWindow(2, time.Minute))
	f.whispers.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(domain.Whisper{ID: "w", Zone: "quad", CreatedAt: now}, nil, nil).Times(2)

	// When the same address posts three times in the window
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := f.do(http.MethodPost, "/api/whispers", `{"content":"hi","zone":"quad"}`)
		codes = append(codes, rec.Code)
	}

	// Then the third is refused without reaching the service
	req.Equal([]int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRouter_GetWhisper(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	parent := "w-0"
	f.whispers.EXPECT().Get(gomock.Any(), "w-1").
		Return(domain.Whisper{ID: "w-1", Status: domain.WhisperDone, IsReply: true, ParentID: &parent}, nil)
	f.whispers.EXPECT().Get(gomock.Any(), "missing").Return(domain.Whisper{}, errors.ErrWhisperNotFound)

	rec := f.do(http.MethodGet, "/api/whispers/w-1", "")
	req.Equal(http.StatusOK, rec.Code)
	whisper := decode(t, rec)["whisper"].(map[string]any)
	req.Equal("done", whisper["status"])
	req.Equal("w-0", whisper["parentId"])

	rec = f.do(http.MethodGet, "/api/whispers/missing", "")
	req.Equal(http.StatusNotFound, rec.Code)
}

func TestRouter_RequestReply(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	f.jobs.EXPECT().RequestReply(gomock.Any(), "w-1").
		Return(domain.Job{ID: 3, TargetID: "w-1", Status: domain.JobPending, RunAt: now}, nil)

	rec := f.do(http.MethodPost, "/api/whispers/w-1/reply", "")

	req.Equal(http.StatusAccepted, rec.Code)
	req.Equal("pending", decode(t, rec)["job"].(map[string]any)["status"])
}

func TestRouter_ListJobs(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	lastError := "status 503"
	f.jobs.EXPECT().List(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ any, status *domain.JobStatus, _ int) ([]domain.Job, error) {
			req.NotNil(status)
			req.Equal(domain.JobError, *status)
			return []domain.Job{{ID: 1, Status: domain.JobError, RetryCount: 3, LastError: &lastError}}, nil
		})

	rec := f.do(http.MethodGet, "/api/jobs?status=error&limit=10", "")

	req.Equal(http.StatusOK, rec.Code)
	jobs := decode(t, rec)["jobs"].([]any)
	req.Len(jobs, 1)
	req.Equal(float64(3), jobs[0].(map[string]any)["retryCount"])
	req.Equal("status 503", jobs[0].(map[string]any)["error"])

	// Unknown status and bad limits never reach the service
	req.Equal(http.StatusBadRequest, f.do(http.MethodGet, "/api/jobs?status=zombie", "").Code)
	req.Equal(http.StatusBadRequest, f.do(http.MethodGet, "/api/jobs?limit=-1", "").Code)
}

func TestRouter_CancelJob(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"cancelled", nil, http.StatusOK},
		{"already terminal", errors.ErrInvalidState, http.StatusConflict},
		{"unknown job", errors.ErrJobNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newRouterFixture(t, nil, nil)
			f.jobs.EXPECT().Cancel(gomock.Any(), domain.JobID(42)).
				Return(domain.Job{ID: 42, Status: domain.JobCancelled}, tt.err)

			rec := f.do(http.MethodPost, "/api/jobs/42/cancel", "")

			req.Equal(tt.code, rec.Code)
		})
	}

	t.Run("non numeric id", func(t *testing.T) {
		f := newRouterFixture(t, nil, nil)
		require.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/jobs/abc/cancel", "").Code)
	})
}

func TestRouter_AdminRoutesRequireRole(t *testing.T) {
	req := require.New(t)
	tokens := auth.NewTokenManager("router-secret")
	f := newRouterFixture(t, tokens, nil)
	admin, err := tokens.GenerateToken("op", []string{"admin"}, time.Hour)
	req.NoError(err)
	f.jobs.EXPECT().List(gomock.Any(), nil, defaultJobListLimit).Return(nil, nil)

	req.Equal(http.StatusUnauthorized, f.do(http.MethodGet, "/api/jobs", "").Code)
	req.Equal(http.StatusOK, f.do(http.MethodGet, "/api/jobs", "", "Authorization", "Bearer "+admin).Code)
}

func TestRouter_AdminLogin(t *testing.T) {
	req := require.New(t)
	tokens := auth.NewTokenManager("router-secret")
	f := newRouterFixture(t, tokens, nil)
	f.jobs.EXPECT().List(gomock.Any(), nil, defaultJobListLimit).Return(nil, nil)

	// A wrong password is refused
	rec := f.do(http.MethodPost, "/api/admin/login", `{"password":"guess"}`)
	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("invalid_credentials", decode(t, rec)["error"].(map[string]any)["code"])

	// The right one yields a token accepted by the admin routes
	rec = f.do(http.MethodPost, "/api/admin/login", `{"password":"`+operatorPassword+`"}`)
	req.Equal(http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)
	req.Equal(http.StatusOK, f.do(http.MethodGet, "/api/jobs", "", "Authorization", "Bearer "+token).Code)

	// A missing password is a bad request
	req.Equal(http.StatusBadRequest, f.do(http.MethodPost, "/api/admin/login", `{}`).Code)
}

func TestRouter_AdminLoginDisabledWithoutSecret(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)

	rec := f.do(http.MethodPost, "/api/admin/login", `{"password":"anything"}`)
	req.Equal(http.StatusNotFound, rec.Code)
}

func TestRouter_Search(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	f.whispers.EXPECT().Search(gomock.Any(), domain.NewSearchQuery("exam --zone library")).
		Return([]domain.Whisper{{ID: "w-1", Content: "exam soon", Zone: "library", CreatedAt: now}}, nil)

	rec := f.do(http.MethodGet, "/api/search?q=exam+--zone+library", "")

	req.Equal(http.StatusOK, rec.Code)
	whispers := decode(t, rec)["whispers"].([]any)
	req.Len(whispers, 1)
	req.Equal("w-1", whispers[0].(map[string]any)["id"])
}

func TestRouter_SearchErrors(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)

	req.Equal(http.StatusBadRequest, f.do(http.MethodGet, "/api/search", "").Code)

	f.whispers.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.ErrSearchUnavailable)
	req.Equal(http.StatusServiceUnavailable, f.do(http.MethodGet, "/api/search?q=exam", "").Code)
}

func TestRouter_ListZones(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)
	f.registry.EXPECT().Snapshot(gomock.Any()).Return(domain.RegistrySnapshot{
		Sessions:    3,
		TotalActive: 2,
		Zones:       []domain.ZoneActivity{{Zone: "quad", Users: 2, LastActivity: now}},
		Emotions:    []domain.EmotionPulse{{Emotion: "joy", Count: 4, LastPulse: now}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/zones", "")

	req.Equal(http.StatusOK, rec.Code)
	body := decode(t, rec)
	zones := body["zones"].([]any)
	req.Len(zones, 2)
	req.Equal("library", zones[0].(map[string]any)["zone"])
	req.Equal(float64(0), zones[0].(map[string]any)["activity"].(map[string]any)["users"])
	req.Equal(float64(2), zones[1].(map[string]any)["activity"].(map[string]any)["users"])
	req.Equal(float64(2), body["totalActive"])
	req.Len(body["emotions"].([]any), 1)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)

	req.Equal(http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	rec := f.do(http.MethodGet, "/metrics", "")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "whisperwall_up")
}

func TestRouter_CORS(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, nil, nil)

	rec := f.do(http.MethodOptions, "/api/zones", "",
		"Origin", "http://localhost:3000",
		"Access-Control-Request-Method", "GET")

	req.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
