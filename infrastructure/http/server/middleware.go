package server

import (
	"log/slog"
	"net/http"
	"time"
	"whisperwall/clock"
	"whisperwall/errors"
	"whisperwall/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request once the handler returned.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request failed", attrs...)
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request rejected", attrs...)
		default:
			log.Debug("HTTP request served", attrs...)
		}
	}
}

func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// LimitByIP answers 429 once a client address exceeded its window budget.
// Unlike the real-time channel, HTTP callers are told about the drop.
func LimitByIP(limiter *ratelimit.FixedWindow, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), clk.Now()) {
			RespondError(c, http.StatusTooManyRequests, "rate_limited", errors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
