// Package main is the entry point for StarCommand.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/SanguinemDe/starcommand/internal/config"
	"github.com/SanguinemDe/starcommand/internal/game"
	"github.com/SanguinemDe/starcommand/internal/gamelog"
	"github.com/SanguinemDe/starcommand/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "starcommand.yaml", "path to the settings file")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	sink, closeLog, err := gamelog.Setup(settings.LogDir, gamelog.ParseLevel(settings.LogLevel))
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if settings.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(settings, sink)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
