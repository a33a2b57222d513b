package infra

import (
	"fmt"

	"cuadre/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewBasePOS opens a read-only GORM connection to the third-party POS
// database. We never migrate or write there: its schema belongs to the POS
// vendor and every query goes through raw SQL in the repository layer.
func NewBasePOS(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("pos db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// The POS link is shared with the store's own terminals — keep our
	// footprint small.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)

	if err := db.Exec("SET default_transaction_read_only = on").Error; err != nil {
		return nil, fmt.Errorf("pos db read-only: %w", err)
	}
	return db, nil
}

// NewBaseLocal opens the local settlement store and migrates its schema.
// This database is ours, so AutoMigrate is fine here.
func NewBaseLocal(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("local db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Descuento{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}
