package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// CodeTooManyRequests is reported when a client exceeds its request rate
const CodeTooManyRequests = 4290

// NewRateLimiter builds an in-process limiter from a formatted rate such as "100-S"
func NewRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit rejects clients, keyed by IP, that exceed the limiter's rate
func RateLimit(limiterInstance *limiter.Limiter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limit, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Failed to get rate limit context", map[string]any{
				"ip":    ip,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.CodeInternalServer,
				Message: "Internal server error",
			})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprint(limit.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprint(limit.Remaining))

		if limit.Reached {
			logger.Warn("Rate limit exceeded", map[string]any{
				"ip":    ip,
				"limit": limit.Limit,
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    CodeTooManyRequests,
				Message: "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
