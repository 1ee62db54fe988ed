package main

import (
	"fmt"
	"log"

	"harborhr/backend/internal/auth"
	"harborhr/backend/internal/database"
	"harborhr/backend/internal/filestorage"
	"harborhr/backend/internal/handlers"
	"harborhr/backend/internal/notifications"
	"harborhr/backend/internal/router"
	"harborhr/backend/internal/seeders"
	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"
)

func buildDSN() string {
	sslMode := "disable"
	if config.Cfg.EnableDBSSL {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		config.Cfg.DBHost, config.Cfg.DBPort, config.Cfg.DBUser, config.Cfg.DBPassword, config.Cfg.DBName, sslMode)
}

func main() {
	config.LoadConfig()
	hlog.Init(config.Cfg.LogLevel, config.Cfg.Environment)
	defer hlog.Sync()

	if err := auth.InitializeJWT(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}
	if err := handlers.InitPasswordReset(); err != nil {
		log.Fatalf("Failed to initialize password reset verifier: %v", err)
	}

	if err := database.ConnectDB(buildDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if config.Cfg.Environment == "development" {
		if err := seeders.SeedDemoData(database.GetDB()); err != nil {
			log.Printf("Warning: demo data seeding failed: %v", err)
		}
	}

	notifications.InitEmailService()
	if err := filestorage.InitFileStorage(); err != nil {
		log.Printf("Warning: file storage initialization failed: %v", err)
	}

	r := router.SetupRouter(hlog.L)

	log.Printf("Starting server on port %s", config.Cfg.Port)
	if err := r.Run(":" + config.Cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
