package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware builds an in-memory rate limiter from a limiter format
// string such as "100-M" (100 requests per minute). An invalid format
// disables limiting rather than refusing to start.
func RateLimitMiddleware(format string, logger *slog.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Warn("Invalid rate limit format, rate limiting disabled", slog.String("format", format), slog.String("error", err.Error()))
		return func(c *gin.Context) { c.Next() }
	}
	return limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
