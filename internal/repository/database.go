package repository

import (
	"fmt"
	"log/slog"

	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values for the database.driver setting.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// OpenDatabase connects to the SQLite file at name.
func OpenDatabase(name string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", name, err)
	}
	return db, nil
}

// Migrate creates or updates the file_metadata table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UploadRecord{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Open builds the repository selected by driver. The returned close function
// releases the underlying connection and is never nil.
func Open(driver, name string) (UploadRepository, func() error, error) {
	switch driver {
	case DriverMemory:
		slog.Warn("using in-memory upload repository, records are lost on exit")
		return NewInMemoryUploadRepository(), func() error { return nil }, nil
	case DriverSQLite, "":
		db, err := OpenDatabase(name)
		if err != nil {
			return nil, nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
		}

		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}

		return NewUploadRepository(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
