package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
	"github.com/skillswap/skillswap/internal/profile"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	profileRepo := profile.NewProfileRepository(db)
	controller := NewMatchController(profileRepo, appConfig)

	matches := router.Group("/matches")
	matches.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		matches.GET("", controller.GetMatches)
	}
}
