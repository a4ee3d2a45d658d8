package session

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/pairing"
)

func RegisterSessionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewSessionRepository(db)
	requestRepo := pairing.NewRequestRepository(db)
	controller := NewSessionController(repo, requestRepo, appConfig)

	sessions := router.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		sessions.POST("", controller.CreateSession)
		sessions.GET("", controller.GetSessions)
		sessions.PATCH("/:session_id", controller.UpdateSession)
		sessions.POST("/:session_id/reschedule", controller.RescheduleSession)
		sessions.POST("/:session_id/complete", controller.CompleteSession)
		sessions.POST("/:session_id/cancel", controller.CancelSession)
	}
}
