package database

import (
	"gameportal/internal/logger"
	"gameportal/internal/models"
)

// MigrateModels runs GORM AutoMigrate for all models.
func (db *DB) MigrateModels() error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	modelsToMigrate := []any{
		&models.User{},
		&models.Game{},
		&models.Review{},
		&models.PlayHistory{},
		&models.Recommendation{},
	}

	for _, model := range modelsToMigrate {
		if err := db.SQL.AutoMigrate(model); err != nil {
			return log.Err("failed to migrate model", err, "model", model)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}

// CreateIndexes creates additional indexes GORM does not generate from
// struct tags.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_play_histories_user_played_at ON play_histories(user_id, played_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_recommendations_user_score ON recommendations(user_id, score DESC)",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}
