package database

import (
	"fmt"
	"strings"

	"trivia-backend/internal/config"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/model/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDatabase opens the configured store and stops the process when it is
// unreachable.
func InitDatabase(cfg config.ServerConfig) *gorm.DB {
	db, err := OpenDatabase(cfg)
	if err != nil {
		logger.AppLogger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("Failed to connect to database")
		return nil
	}

	logger.AppLogger.Info().Str("driver", cfg.DBDriver).Msg("Database connection established")

	return db
}

// OpenDatabase opens a gorm handle for cfg.DBDriver. Auto-migration of the
// trivia tables only runs when DBAutoMigrate is set.
func OpenDatabase(cfg config.ServerConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBName)
	case config.DriverPostgres, "":
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logger.AppLogger),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite && isMemoryDSN(cfg.DBName) {
		// every pooled connection would get its own empty in-memory database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
