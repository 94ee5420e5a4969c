package main

import (
	"flag"
	"log"

	"go-catalog-admin/internal/backfill"
	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/logger"
	"go-catalog-admin/pkg/database"

	"go.uber.org/zap"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report rows without updating them")
	flag.Parse()

	// 1. Load Env
	cfg := config.Load()
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db, err := database.ConnectDB(database.Options{
		DSN:          cfg.DSN(),
		MaxIdleConns: 1,
		MaxOpenConns: 2,
		Log:          zlog,
	})
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}

	// 3. Repair slugs
	res, err := backfill.Slugs(db, zlog, *dryRun)
	if err != nil {
		zlog.Fatal("backfill failed", zap.Error(err))
	}
	for table, n := range res {
		zlog.Info("backfill done", zap.String("table", table), zap.Int("rows", n), zap.Bool("dry_run", *dryRun))
	}
}
