package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/skill-seeder/internal/config"
	"github.com/KirkDiggler/skill-seeder/internal/store"
)

const (
	exitOK       = 0
	exitFatal    = 1 // store unreachable or catalog unusable
	exitFailures = 2
)

func main() {
	strict := flag.Bool("strict", false, "Exit with status 2 when any catalog entry fails")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cfg.Log.NewLogger(os.Stderr)

	code, err := run(ctx, cfg, logger, os.Stdout, *strict)
	if err != nil {
		var connErr *store.ConnectionError
		if errors.As(err, &connErr) {
			logger.Error("store unreachable, nothing was seeded", "driver", connErr.Driver, "error", connErr.Err)
		} else {
			logger.Error("seeding aborted", "error", err)
		}
	}

	stop()
	os.Exit(code)
}
