package main

import (
	"log"

	"github.com/skillswap/skillswap/config"
	_ "github.com/skillswap/skillswap/docs"
	"github.com/skillswap/skillswap/internal/pairing"
	"github.com/skillswap/skillswap/internal/profile"
	"github.com/skillswap/skillswap/internal/session"
	"github.com/skillswap/skillswap/internal/user"
	"github.com/skillswap/skillswap/routes"
)

// @title SkillSwap API
// @version 1.0
// @description Peer-to-peer skill exchange: publish what you can teach and what you want to learn, get matched, pair up and schedule sessions.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	appConfig := config.GetConfig()
	db := config.DB

	err := db.AutoMigrate(
		&user.User{},
		&user.RefreshToken{},
		&profile.Profile{},
		&pairing.PairRequest{},
		&session.Session{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	router := routes.SetupRoutes(db, appConfig)

	addr := ":" + appConfig.App.Port
	log.Printf("Starting server on %s (env: %s)", addr, appConfig.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
