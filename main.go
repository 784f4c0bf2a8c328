// main.go
package main

import (
	"context"
	"log"

	"glassfinder/cmd"
	"glassfinder/internal/data/repository"
	"glassfinder/internal/wire"
	"glassfinder/pkg/database"
	"glassfinder/pkg/geocoder"
	"glassfinder/pkg/mailer"
	"glassfinder/pkg/storage"
	"glassfinder/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Apply pending schema migrations before taking traffic
	if err := database.RunMigrations(ctx, config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound dependencies
	mail := mailer.NewSMTPMailer(config.Email, logger)
	geo := geocoder.NewHTTPGeocoder(config.Geocoder, logger)

	blobs, err := storage.NewMinioStore(ctx, config.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to connect to object storage", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, mail, geo, blobs)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
