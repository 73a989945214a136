// @title Olympus API
// @version 1.0
// @description Backend for the Olympus math-olympiad learning platform.

// @contact.name Olympus Support
// @contact.email support@olympus.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"olympus_backend/internal/app"
	"olympus_backend/internal/config"
	"olympus_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "run database migrations on startup even in release mode")
	seed := flag.Bool("seed", false, "install demo accounts, courses, questions and a live class")
	refreshCourses := flag.Bool("refresh-courses", false, "replace the course catalog with the current offering")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly || *seed || *refreshCourses
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if *migrateOnly {
		logger.Log.Info("Database migration finished")
		application.Close(context.Background())
		return
	}

	if *seed {
		if err := application.Seed(); err != nil {
			logger.Log.Fatal("Seeding failed", zap.Error(err))
		}
		logger.Log.Info("Demo data seeded")
	}

	if *refreshCourses {
		if err := application.RefreshCourses(); err != nil {
			logger.Log.Fatal("Course refresh failed", zap.Error(err))
		}
		logger.Log.Info("Course catalog refreshed")
	}

	application.Run()
}
