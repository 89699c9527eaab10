package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/Rajvenkat512/fruits-webapp/internal/apiclient"
	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/devicestore"
	"github.com/Rajvenkat512/fruits-webapp/internal/telemetry"
)

func main() {
	config.LoadDotEnv()
	cfg := config.ClientFromEnv()

	logOut := io.Discard
	if os.Getenv("STOREFRONT_DEBUG") != "" {
		logOut = os.Stderr
	}
	logger := log.New(logOut, "[storefront] ", log.LstdFlags|log.LUTC)

	storage, err := devicestore.Open(cfg, logger)
	if err != nil {
		log.Fatalf("open device store: %v", err)
	}

	shutdownTracing, err := telemetry.Setup("storefront", cfg.Tracing, os.Stderr)
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	a := newApp(cfg, storage, logger, os.Stdout,
		apiclient.WithLogger(logger),
		apiclient.WithTransport(telemetry.Transport(nil)),
	)
	runErr := run(context.Background(), a, os.Args[1:]...)
	if err := shutdownTracing(context.Background()); err != nil {
		logger.Printf("flush traces: %v", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
