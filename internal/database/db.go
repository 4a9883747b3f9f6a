package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard/internal/models"
)

// Connect opens the postgres connection and runs migrations.
// TranslateError is required so duplicate-key violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Info().Msg("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	return db
}

// Migrate creates or updates the four tables. Shared with the test setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
	)
}
