package routes

import (
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// SetupMiddlewares configures global middlewares for the API. The logger
// wraps the error handler so it sees the final status. A nil limiter
// disables rate limiting.
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	rateLimiter *limiter.Limiter,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
	if rateLimiter != nil {
		router.Use(middleware.RateLimit(rateLimiter, logger))
	}
}
