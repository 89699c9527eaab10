package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Rajvenkat512/fruits-webapp/internal/config"
	"github.com/Rajvenkat512/fruits-webapp/internal/db"
	"github.com/Rajvenkat512/fruits-webapp/internal/importer"
	"github.com/Rajvenkat512/fruits-webapp/internal/repository/category"
	"github.com/Rajvenkat512/fruits-webapp/internal/repository/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a product or category CSV file")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.LoadDotEnv()
	cfg := config.ServerFromEnv()
	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags|log.LUTC)
	ctx := context.Background()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	kind, err := importer.DetectKind(f)
	if err != nil {
		logger.Fatalf("detect file kind: %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		logger.Fatalf("rewind file: %v", err)
	}

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, logger), category.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d %s in %s\n", count, kind, time.Since(start).Truncate(time.Millisecond))
}
