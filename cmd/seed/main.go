// File: cmd/seed/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"imf-gadget-api/internal/codename"
	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/seed"
)

var (
	loadConfig      = seed.LoadConfig
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	runSeed         = seed.Run
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Reset {
		log.Print("⏪ rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	log.Print("🌱 seeding database")
	sum, err := runSeed(ctx, db, codename.New(nil), cfg)
	if err != nil {
		return fmt.Errorf("seed 失敗: %w", err)
	}
	log.Printf("✅ seeded: %d users, %d gadgets created", sum.UsersCreated, sum.GadgetsCreated)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
