package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Saddickq/TeacherTrek/config"
	"github.com/Saddickq/TeacherTrek/models"
)

// Connect opens the database and migrates the schema. The handle is returned
// to the caller and injected everywhere it is needed; there is no package
// global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema. Separate from Connect so tests can run it
// against their own database handle.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.TransferRequest{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
