// Package main is the entry point for GridTactics.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridtactics/internal/config"
	"github.com/samdwyer/gridtactics/internal/game"
	"github.com/samdwyer/gridtactics/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a match YAML file")
	seed := flag.Int64("seed", 0, "dice seed (0 = time-based)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_GRIDTACTICS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		telemetry.ConfigureHoneycombEnv(cfg.Telemetry.APIKey, cfg.Telemetry.Dataset)

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

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
