package routes

import (
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	memberHandler *handler.MemberHandler,
	transferHandler *handler.TransferHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	memberRoutes := router.Group("/members")
	{
		memberRoutes.POST("", memberHandler.CreateMember)
		memberRoutes.GET("/:memberId", memberHandler.GetMember)
		memberRoutes.DELETE("/:memberId", memberHandler.DeleteMember)
	}

	router.POST("/transfers", transferHandler.Transfer)
}
