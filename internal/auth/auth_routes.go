package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/config"
	"github.com/skillswap/skillswap/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	public := router.Group("/auth")
	{
		public.POST("/register", controller.Register)
		public.POST("/login", controller.Login)
		public.POST("/refresh", controller.RefreshToken)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("/logout", controller.Logout)
		protected.GET("/me", controller.GetMe)
	}
}
