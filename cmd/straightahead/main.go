// Package main is the entry point for Straight Ahead.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/straightahead/internal/audio"
	"github.com/samdwyer/straightahead/internal/game"
	"github.com/samdwyer/straightahead/internal/spectate"
	"github.com/samdwyer/straightahead/internal/telemetry"
)

func main() {
	// .env is optional; variables may already be set.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to the game, so logs go to a file.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrNoCredentials):
		log.Printf("Note: telemetry disabled, HONEYCOMB_STRAIGHTAHEAD_API_KEY not set")
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	var hooks game.Hooks

	if cfg.Sound {
		cues := audio.NewCuePlayer(cfg.Volume)
		if err := cues.Init(); err != nil {
			log.Printf("Warning: audio disabled: %v", err)
		} else {
			defer cues.Close()
			hooks.Cues = cues
		}
	}

	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub()
		srv := spectate.NewServer(cfg.SpectateAddr, hub)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.Printf("Error shutting down spectator server: %v", err)
			}
		}()
		log.Printf("Spectator feed on ws://%s/ws", cfg.SpectateAddr)
		hooks.Publisher = hub
	}

	g, err := game.New(cfg, hooks)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		fmt.Fprintf(os.Stderr, "straightahead: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded reference, so the header is built here.
	apiKey := os.Getenv("HONEYCOMB_STRAIGHTAHEAD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_STRAIGHTAHEAD_DATASET")
	if dataset == "" {
		dataset = "straightahead"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
