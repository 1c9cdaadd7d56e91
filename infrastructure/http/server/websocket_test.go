package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"whisperwall/clock"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/runtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newWebSocketServer(t *testing.T) (*httptest.Server, *runtime.Registry, chan domain.CreateWhisper) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	content := make(chan domain.CreateWhisper, 4)
	registry := runtime.NewRegistry(log, clock.NewFake(now),
		domain.NewZones([]string{"library", "quad"}),
		runtime.RegistryConfig{
			IPLimit:              20,
			IPWindow:             time.Minute,
			ContentSpacing:       12 * time.Second,
			PulseSpacing:         10 * time.Second,
			IdleTimeout:          5 * time.Minute,
			ReauthInterval:       10 * time.Minute,
			ZoneStaleness:        30 * time.Minute,
			EmotionStaleness:     time.Hour,
			HousekeepingInterval: time.Hour,
		}, content, make(chan event.Event, 64), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = registry.Run(ctx)
	}()

	router := NewRouter(RouterConfig{
		WebSocketHandler: NewWebSocketHandler(log, registry, WebSocketConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			BufferSize:     16,
		}),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})
	return srv, registry, content
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func waitForSessions(t *testing.T, registry *runtime.Registry, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		snapshot, err := registry.Snapshot(context.Background())
		return err == nil && snapshot.Sessions == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocket_JoinZoneIsBroadcast(t *testing.T) {
	req := require.New(t)
	srv, registry, _ := newWebSocketServer(t)
	alice := dial(t, srv)
	bob := dial(t, srv)
	waitForSessions(t, registry, 2)

	// When alice joins the library
	req.NoError(alice.WriteJSON(map[string]any{"event": "join-zone", "data": "library"}))

	// Then both sessions receive the zone activity update
	for _, conn := range []*websocket.Conn{alice, bob} {
		f := readFrame(t, conn)
		req.Equal("zone-activity-update", f.Event)
		var update event.ZoneActivityUpdate
		req.NoError(json.Unmarshal(f.Data, &update))
		req.Equal(domain.Zone("library"), update.Zone)
		req.Equal(1, update.Activity.Users)
		req.Equal(1, update.TotalActive)
	}
}

func TestWebSocket_CreateContentIsForwarded(t *testing.T) {
	req := require.New(t)
	srv, registry, content := newWebSocketServer(t)
	conn := dial(t, srv)
	waitForSessions(t, registry, 1)

	req.NoError(conn.WriteJSON(map[string]any{
		"event": "create-content",
		"data":  map[string]string{"content": "anyone at the quad?", "zone": "quad", "emotion": "curious"},
	}))

	select {
	case cmd := <-content:
		req.Equal(domain.Zone("quad"), cmd.Zone)
		req.Equal("anyone at the quad?", cmd.Content)
	case <-time.After(2 * time.Second):
		req.Fail("create-content was not forwarded")
	}
}

func TestWebSocket_MalformedFrameIsCountedAsDrop(t *testing.T) {
	req := require.New(t)
	srv, registry, _ := newWebSocketServer(t)
	conn := dial(t, srv)
	waitForSessions(t, registry, 1)

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	req.Eventually(func() bool {
		return registry.Stats().ValidationDrops == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocket_DisconnectRemovesSession(t *testing.T) {
	srv, registry, _ := newWebSocketServer(t)
	conn := dial(t, srv)
	waitForSessions(t, registry, 1)

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	_ = conn.Close()

	waitForSessions(t, registry, 0)
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	req := require.New(t)
	srv, _, _ := newWebSocketServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.example"}})

	req.Error(err)
	req.NotNil(resp)
	req.Equal(http.StatusForbidden, resp.StatusCode)
}
