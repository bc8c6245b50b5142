// Package main is the entry point for Battleship.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/battleship/internal/config"
	"github.com/samdwyer/battleship/internal/game"
	"github.com/samdwyer/battleship/internal/logging"
	"github.com/samdwyer/battleship/internal/telemetry"
	"github.com/samdwyer/battleship/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default settings")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the configured seed)")
	mode := flag.String("mode", "", "skip the main menu: pvp, pvc or cvc")
	headless := flag.Bool("headless", false, "play computer vs computer without a terminal UI")
	flag.Parse()

	// Startup messages go to stderr until the screen takes over.
	startup := log.NewWithOptions(os.Stderr, log.Options{Prefix: "battleship"})

	// Load .env file for local development
	// This makes HONEYCOMB_BATTLESHIP_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		startup.Debug("note: .env file not loaded", "err", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := loadConfig(*configPath, *seed)
	if err != nil {
		startup.Fatal("failed to load config", "err", err)
	}

	var opts []game.Option
	if *headless {
		*mode = game.ModeCvC.String()
	}
	if *mode != "" {
		m, err := game.ParseMode(*mode)
		if err != nil {
			startup.Fatal("invalid -mode", "err", err)
		}
		opts = append(opts, game.WithMode(m))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.GameAttributes(cfg.BoardSize, cfg.Fleet, cfg.Seed)...)
	if err != nil {
		startup.Warn("telemetry setup failed, game will run without observability", "err", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				startup.Error("error shutting down telemetry", "err", err)
			}
		}()
	}

	if *headless {
		err = runHeadless(ctx, cfg, opts)
	} else {
		err = runTerminal(ctx, cfg, opts)
	}
	if err != nil {
		startup.Error("game error", "err", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers embedded defaults, the optional file, the environment
// and the -seed flag.
func loadConfig(path string, seed int64) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

// runTerminal plays on the tcell screen. Logs go to the configured file only.
func runTerminal(ctx context.Context, cfg config.Config, opts []game.Option) error {
	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := ui.NewTerminal(cfg.Theme)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Close()

	g, err := game.New(cfg, term, append(opts, game.WithLogger(logger))...)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// runHeadless plays computer vs computer, logging to stderr and printing
// the final boards to stdout.
func runHeadless(ctx context.Context, cfg config.Config, opts []game.Option) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	g, err := game.New(headlessConfig(cfg), ui.NewHeadless(os.Stdout, logger), append(opts, game.WithLogger(logger))...)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// headlessConfig drops the pause before computer shots; nobody is watching.
func headlessConfig(cfg config.Config) config.Config {
	cfg.ThinkDelay = 0
	return cfg
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_BATTLESHIP_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BATTLESHIP_DATASET")
	if dataset == "" {
		dataset = "battleship" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
