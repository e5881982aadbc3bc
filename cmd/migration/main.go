package main

import (
	"os"

	"gameportal/cmd/migration/seed"
	"gameportal/config"
	"gameportal/internal/database"
	"gameportal/internal/logger"
)

func main() {
	log := logger.New("migrations").Function("main")

	config, err := config.New()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(config)
	if err != nil {
		log.Er("failed to create database", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Er("failed to close database", err)
		}
	}()

	if err := db.MigrateModels(); err != nil {
		log.Er("failed to migrate models", err)
		os.Exit(1)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Er("failed to create indexes", err)
		os.Exit(1)
	}

	log.Info("Migrations completed")

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Seed(db.SQL, config, logger.New("migrations")); err != nil {
			log.Er("failed to seed database", err)
			os.Exit(1)
		}
		log.Info("Seeding completed")
	}
}
