package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"
	"whisperwall/infrastructure/grpc/server"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type testWhisperFlowSuite struct {
	BaseSuite
}

func TestWhisperFlowSuite(t *testing.T) {
	suite.Run(t, &testWhisperFlowSuite{})
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (s *testWhisperFlowSuite) TestPostWhisperReachesListeners() {
	// --- STEP 0: RUNTIME HEALTH ---
	s.Run("Step 0: Runtime reports serving", func() {
		s.WithHealth("Checking runtime health", func(ctx context.Context, client healthpb.HealthClient) {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: server.RuntimeService})
			s.Require().NoError(err)
			s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.Status)
		})
	})

	listener := s.Dial("Opening listener session")
	defer listener.Close()

	// --- STEP 1: ZONE PRESENCE ---
	s.Run("Step 1: Joining a zone broadcasts activity", func() {
		s.Require().NoError(listener.WriteJSON(map[string]any{"event": "join-zone", "data": s.Config.Zone}))
		f := s.readUntil(listener, "zone-activity-update")
		s.Require().Contains(string(f.Data), s.Config.Zone)
	})

	// --- STEP 2: POST AND FAN OUT ---
	var created struct {
		Whisper struct {
			ID   string `json:"id"`
			Zone string `json:"zone"`
		} `json:"whisper"`
	}
	s.Run("Step 2: Posted whisper is stored and broadcast", func() {
		code := s.DoJSON("Posting a whisper", http.MethodPost, "/api/whispers", map[string]string{
			"content": "Does anyone else study better at night?",
			"zone":    s.Config.Zone,
			"emotion": "curious",
		}, &created)
		s.Require().Equal(http.StatusCreated, code)
		s.Require().NotEmpty(created.Whisper.ID)

		f := s.readUntil(listener, "new-content")
		s.Require().Contains(string(f.Data), created.Whisper.ID)
	})

	// --- STEP 3: READ BACK ---
	s.Run("Step 3: Whisper can be fetched by id", func() {
		var fetched map[string]map[string]any
		code := s.DoJSON("Fetching the whisper", http.MethodGet, "/api/whispers/"+created.Whisper.ID, nil, &fetched)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal(created.Whisper.ID, fetched["whisper"]["id"])
	})

	// --- STEP 4: ZONE LISTING ---
	s.Run("Step 4: Zone listing counts the listener", func() {
		var zones struct {
			Sessions int `json:"sessions"`
		}
		code := s.DoJSON("Listing zones", http.MethodGet, "/api/zones", nil, &zones)
		s.Require().Equal(http.StatusOK, code)
		s.Require().GreaterOrEqual(zones.Sessions, 1)
	})

	// --- STEP 5: SEARCH ---
	s.Run("Step 5: Whisper is found by full-text search", func() {
		var found struct {
			Whispers []struct {
				ID string `json:"id"`
			} `json:"whispers"`
		}
		path := "/api/search?q=" + url.QueryEscape("study --zone "+s.Config.Zone)
		code := s.DoJSON("Searching whispers", http.MethodGet, path, nil, &found)
		s.Require().Equal(http.StatusOK, code)
		ids := make([]string, 0, len(found.Whispers))
		for _, w := range found.Whispers {
			ids = append(ids, w.ID)
		}
		s.Require().Contains(ids, created.Whisper.ID)
	})
}

// readUntil skips unrelated frames until one named name arrives.
func (s *testWhisperFlowSuite) readUntil(conn *websocket.Conn, name string) frame {
	deadline := time.Now().Add(10 * time.Second)
	for {
		s.Require().NoError(conn.SetReadDeadline(deadline))
		var f frame
		s.Require().NoError(conn.ReadJSON(&f))
		if f.Event == name {
			return f
		}
	}
}
