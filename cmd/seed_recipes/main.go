package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/config"
	"github.com/pageza/munchai/backend/internal/database"
	"github.com/pageza/munchai/backend/internal/logger"
)

// seed_recipes fills a local development database with sample recipes.
// Production data is owned by Recipes Vault and must never be seeded.
func main() {
	createSchema := flag.Bool("create-schema", true, "Create the Cuisine and Recipes tables if they do not exist")
	flag.Parse()

	env := config.GetEnvironment()
	if config.IsProduction() {
		logger.Must("info", env).Fatal("Refusing to seed a production database, set ENV=development")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Must("info", env).Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.Must(cfg.LogLevel, env)
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *createSchema {
		if err := database.CreateRecipeSchema(ctx, db.DB); err != nil {
			log.Fatal("Failed to create schema", zap.Error(err))
		}
	}

	inserted, err := database.SeedSamples(ctx, db.DB)
	if err != nil {
		log.Fatal("Failed to seed recipes", zap.Error(err))
	}

	log.Info("Seeding completed",
		zap.Int64("inserted", inserted),
		zap.Int("available", len(database.SampleRecipes)),
	)
}
