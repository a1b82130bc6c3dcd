package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"skillbridge/internal/config"
	"skillbridge/internal/database/migration"
	dbpostgres "skillbridge/internal/database/postgres"
	"skillbridge/internal/database/seeder"
)

func main() {
	seed := flag.Bool("seed", true, "run seeders after migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := (migration.Runner{Dir: cfg.Migrations.Dir, Logger: logger}).Run(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if !*seed {
		return
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
