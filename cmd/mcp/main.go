package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chromactl/pkg/config"
	chromamcp "chromactl/pkg/mcp"
	"chromactl/pkg/profile"
	"chromactl/pkg/registry"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	configPath := flag.String("config", "", "Path to settings file (default: ~/.config/chromactl/settings.json)")
	profilePath := flag.String("profiles", "", "Path to profile store (default: ~/.config/chromactl/profiles.json)")
	flag.Parse()

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

	// Open profile store
	profiles, err := profile.Open(*profilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open profile store")
	}

	// Wire backends
	reg := registry.NewDefault(&cfg)

	// Create and start MCP server
	mcpServer := chromamcp.NewServer(reg, profiles)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
