package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chromactl/pkg/api"
	"chromactl/pkg/config"
	"chromactl/pkg/db"
	"chromactl/pkg/profile"
	"chromactl/pkg/registry"

	_ "chromactl/docs"
)

// @title           chromactl API
// @version         1.0
// @description     REST API for unified RGB lighting control

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	addr := flag.String("addr", ":8080", "API listen address")
	configPath := flag.String("config", "", "Path to settings file (default: ~/.config/chromactl/settings.json)")
	profilePath := flag.String("profiles", "", "Path to profile store (default: ~/.config/chromactl/profiles.json)")
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/chromactl/chromactl.db)")
	flag.Parse()

	ctx := context.Background()

	confDir, err := config.DefaultDir()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve config directory")
	}
	if *configPath == "" {
		*configPath = filepath.Join(confDir, "settings.json")
	}
	if *profilePath == "" {
		*profilePath = filepath.Join(confDir, "profiles.json")
	}

	// Load settings, writing defaults on first run
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	log.Info().Str("path", *configPath).Msg("Settings loaded")

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Open profile store
	profiles, err := profile.Open(*profilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open profile store")
	}

	// Wire backends and persistence
	reg := registry.NewDefault(&cfg)
	reg.SetRecorder(database.NewRecorder())

	// Create and start API router
	router := api.NewRouter(reg, profiles, database.History())

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("address", *addr).Msg("Starting API server")

	if err := router.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
