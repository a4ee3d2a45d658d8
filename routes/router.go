package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/analytics"
	"github.com/skillswap/skillswap/internal/auth"
	"github.com/skillswap/skillswap/internal/match"
	"github.com/skillswap/skillswap/internal/pairing"
	"github.com/skillswap/skillswap/internal/profile"
	"github.com/skillswap/skillswap/internal/session"
	"github.com/skillswap/skillswap/internal/skill"
)

// SetupRoutes wires every feature's routes onto a new gin engine.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		auth.RegisterAuthRoutes(api, db, appConfig)
		skill.RegisterSkillRoutes(api)
		profile.RegisterProfileRoutes(api, db, appConfig)
		match.RegisterMatchRoutes(api, db, appConfig)
		pairing.RegisterRequestRoutes(api, db, appConfig)
		session.RegisterSessionRoutes(api, db, appConfig)
		analytics.RegisterAnalyticsRoutes(api, db, appConfig)
	}

	return router
}
