package pairing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
)

func RegisterRequestRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRequestRepository(db)
	controller := NewRequestController(repo, appConfig)

	requests := router.Group("/requests")
	requests.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		requests.POST("", controller.CreateRequest)
		requests.GET("/sent", controller.GetSentRequests)
		requests.GET("/received", controller.GetReceivedRequests)
		requests.POST("/:request_id/accept", controller.AcceptRequest)
		requests.POST("/:request_id/decline", controller.DeclineRequest)
		requests.POST("/:request_id/cancel", controller.CancelRequest)
	}
}
