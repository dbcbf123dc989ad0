package main

import (
	"log"

	"careerprep/internal/config"
	"careerprep/internal/database"
	"careerprep/internal/logger"
)

// Applies pending history-database migrations and exits. Useful when
// the API server runs without write access to the schema.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXSqliteDB(cfg.History.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger.Get().Info("Migrations applied")
}
