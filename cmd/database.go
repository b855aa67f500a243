package cmd

import (
	"fmt"

	"luggage/internal/adapters/out/postgres"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to the configured store and migrates the schema.
func OpenDatabase(configs Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch configs.DBDriver {
	case DriverPostgres, "":
		dialector = pgdriver.Open(postgresDSN(configs))
	case DriverSQLite:
		dialector = sqlite.Open(configs.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", configs.DBDriver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", configs.DBDriver, err)
	}

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return gormDB, nil
}

func postgresDSN(configs Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
}
