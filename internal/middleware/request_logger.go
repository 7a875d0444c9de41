package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/guttosm/tour-service/internal/logger"
)

// RequestLogger writes one structured line per request and, when sink is
// non-nil, queues the same entry for persistence.
func RequestLogger(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := levelForStatus(statusCode)
		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      level,
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		log := logger.Logger().With().
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Logger()

		switch level {
		case "error":
			log.Error().Msg(entry.Message)
		case "warn":
			log.Warn().Msg(entry.Message)
		default:
			log.Info().Msg(entry.Message)
		}

		if sink != nil {
			sink.Log(entry)
		}
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
