package database

import (
	"brickvale-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from a Postgres DSN. PreferSimpleProtocol disables
// prepared statement caching, which breaks behind connection poolers
// (PgBouncer and friends raise 42P05 otherwise).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Project{},
		&models.Unit{},
		&models.UnitAgent{},
		&models.MediaFile{},
		&models.Document{},
		&models.Payment{},
		&models.Notification{},
		&models.PushToken{},
	)
}
