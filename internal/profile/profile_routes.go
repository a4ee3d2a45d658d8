package profile

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
)

func RegisterProfileRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewProfileRepository(db)
	controller := NewProfileController(repo, appConfig)

	profiles := router.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		profiles.GET("/me", controller.GetMyProfile)
		profiles.PUT("/me", controller.SaveMyProfile)
	}
}
