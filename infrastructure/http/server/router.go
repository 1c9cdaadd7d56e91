// Package server exposes the REST API, the WebSocket endpoint and the metrics
// over a single gin engine.
package server

import (
	"log/slog"
	"net/http"
	"whisperwall/auth"
	"whisperwall/clock"
	"whisperwall/ratelimit"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	Log            *slog.Logger
	AllowedOrigins []string
	Clock          clock.Clock
	CreateLimiter  *ratelimit.FixedWindow
	Tokens         *auth.TokenManager
	Metrics        http.Handler

	WhisperHandler   *WhisperHandler
	JobHandler       *JobHandler
	ZoneHandler      *ZoneHandler
	AdminHandler     *AdminHandler
	WebSocketHandler *WebSocketHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(RequestLogger(cfg.Log))
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(CORS(cfg.AllowedOrigins))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}
	if cfg.WebSocketHandler != nil {
		r.GET("/ws", cfg.WebSocketHandler.Serve)
	}

	api := r.Group("/api")
	{
		if cfg.WhisperHandler != nil {
			create := []gin.HandlerFunc{cfg.WhisperHandler.CreateWhisper}
			if cfg.CreateLimiter != nil {
				clk := cfg.Clock
				if clk == nil {
					clk = clock.System{}
				}
				create = append([]gin.HandlerFunc{LimitByIP(cfg.CreateLimiter, clk)}, create...)
			}
			api.POST("/whispers", create...)
			api.GET("/whispers/:id", cfg.WhisperHandler.GetWhisper)
			api.POST("/whispers/:id/reply", cfg.WhisperHandler.RequestReply)
			api.GET("/search", cfg.WhisperHandler.Search)
		}
		if cfg.ZoneHandler != nil {
			api.GET("/zones", cfg.ZoneHandler.ListZones)
		}
		if cfg.AdminHandler != nil {
			api.POST("/admin/login", cfg.AdminHandler.Login)
		}
	}

	admin := api.Group("/")
	{
		admin.Use(auth.RequireRole(cfg.Tokens, auth.AdminRole))
		if cfg.JobHandler != nil {
			admin.GET("/jobs", cfg.JobHandler.ListJobs)
			admin.POST("/jobs/:id/cancel", cfg.JobHandler.CancelJob)
		}
	}
	return r
}
