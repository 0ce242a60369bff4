package main

import (
	"go.uber.org/zap"

	"github.com/phetoho/backend/internal/infrastructure/config"
	"github.com/phetoho/backend/internal/infrastructure/logger"
	"github.com/phetoho/backend/internal/infrastructure/persistence"
)

// Seeds the database with demo products, orders, and chat logs.
// Safe to run repeatedly; existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Schema migrated")

	if err := persistence.Seed(db.DB); err != nil {
		log.Fatal("Failed to seed database", zap.Error(err))
	}
	log.Info("Demo data seeded", zap.String("driver", cfg.Database.Driver))
}
