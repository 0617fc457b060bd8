// migrate applies or rolls back the embedded schema migrations: go run ./cmd/migrate -direction up
package main

import (
	"flag"
	"fmt"
	"os"

	"contract-mgmt/backend/internal/config"
	"contract-mgmt/backend/internal/db/migrate"
	"contract-mgmt/backend/internal/logger"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.Component(logger.New(os.Stderr, logger.Options{Level: cfg.LogLevel, Production: cfg.IsProduction()}), "migrate")

	dir, err := migrate.ParseDirection(*direction)
	if err != nil {
		log.Error("invalid flag", "error", err)
		os.Exit(2)
	}
	if err := migrate.Run(cfg.DatabaseURL, dir); err != nil {
		log.Error("migration failed", "direction", dir, "error", err)
		os.Exit(1)
	}
	v, dirty, err := migrate.Version(cfg.DatabaseURL)
	if err != nil {
		log.Warn("read schema version", "error", err)
		return
	}
	log.Info("migrations applied", "direction", dir, "version", v, "dirty", dirty)
}
