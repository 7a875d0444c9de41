package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tour-service/internal/domain/dto"
)

// DefaultRequestTimeout applies when REQUEST_TIMEOUT is unset.
const DefaultRequestTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Handlers run on the
// request goroutine; if the deadline passes before anything is written the
// client gets a 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, "Request timeout").WithRequestID(GetRequestID(c)))
		}
	}
}
