package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"
	"whisperwall/contract"
	"whisperwall/domain"
	"whisperwall/domain/event"
	"whisperwall/sink"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WebSocketConfig struct {
	AllowedOrigins []string
	BufferSize     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	MaxMessageSize int64
}

// WebSocketHandler bridges one WebSocket connection to one registry session.
// Frames are {"event": name, "data": payload} in both directions.
type WebSocketHandler struct {
	log      *slog.Logger
	registry contract.IRegistry
	cfg      WebSocketConfig
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(log *slog.Logger, registry contract.IRegistry, cfg WebSocketConfig) *WebSocketHandler {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 64
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.PongTimeout <= 0 {
		cfg.PongTimeout = 60 * time.Second
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = 8 * 1024
	}
	h := &WebSocketHandler{log: log, registry: registry, cfg: cfg}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin lets non-browser clients through, they send no Origin header.
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(h.cfg.AllowedOrigins, "*") {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}

// GET /ws
// Blocks until the peer hangs up or the registry closes the session.
// The session is always removed from the registry on the way out.
func (h *WebSocketHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "client_ip", c.ClientIP(), "error", err)
		return
	}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	id := domain.SessionID(uuid.NewString())
	out := sink.NewSessionSink(h.cfg.BufferSize)
	if err := h.registry.Connect(ctx, id, c.ClientIP(), out); err != nil {
		h.log.Error("Unable to register session", "session_id", id, "error", err)
		_ = conn.Close()
		return
	}
	defer func() {
		disconnectCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer stop()
		if err := h.registry.Disconnect(disconnectCtx, id); err != nil {
			h.log.Warn("Unable to unregister session", "session_id", id, "error", err)
		}
	}()

	written := make(chan struct{})
	go func() {
		defer close(written)
		h.writeLoop(ctx, id, conn, out)
	}()
	h.readLoop(ctx, id, conn)
	cancel()
	<-written
}

// readLoop forwards every frame to the registry. Drops are not reported back.
func (h *WebSocketHandler) readLoop(ctx context.Context, id domain.SessionID, conn *websocket.Conn) {
	conn.SetReadLimit(h.cfg.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("WebSocket read failed", "session_id", id, "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))

		// A malformed frame goes through with no name so it is counted as a drop
		var in domain.InboundEvent
		if err := json.Unmarshal(data, &in); err != nil {
			in = domain.InboundEvent{}
		}
		if err := h.registry.Handle(ctx, id, in); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
		}
	}
}

// writeLoop is the only writer of the connection.
func (h *WebSocketHandler) writeLoop(ctx context.Context, id domain.SessionID, conn *websocket.Conn, out *sink.SessionSink) {
	ticker := time.NewTicker(h.cfg.PongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			h.closeConn(conn, websocket.CloseGoingAway, "server shutting down")
			return
		case <-out.Done():
			h.log.Debug("Session closed by registry", "session_id", id)
			h.closeConn(conn, websocket.CloseNormalClosure, "session closed")
			return
		case e := <-out.Events:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := conn.WriteJSON(event.ToEnvelope(e)); err != nil {
				h.log.Debug("WebSocket write failed", "session_id", id, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) closeConn(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.cfg.WriteTimeout))
}
