package main

import (
	"context"
	"log"
	"os"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/seed"
)

func main() {
	config.LoadDotEnv()
	cfg := config.ServerFromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied, demo login %s / %s", seed.DemoEmail, seed.DemoPassword)
}
