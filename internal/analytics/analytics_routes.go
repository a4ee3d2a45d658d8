package analytics

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
)

func RegisterAnalyticsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAnalyticsRepository(db)
	cache := NewCache(config.Redis)
	controller := NewAnalyticsController(repo, cache, appConfig)

	group := router.Group("/analytics")
	group.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		group.GET("/skills", controller.GetSkillAnalytics)
		group.GET("/me", controller.GetMyStats)
	}
}
