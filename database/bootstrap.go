// database/bootstrap.go
package database

import (
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"farmbook/config"
	"farmbook/entities"
)

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&entities.UnitOfMeasure{},
		&entities.WaterSource{},
		&entities.LandParcel{},
		&entities.LandParcelWaterSource{},
		&entities.CropType{},
		&entities.SeasonDefinition{},
		&entities.Season{},
		&entities.ActivityType{},
		&entities.CropCycle{},
		&entities.CropCycleStage{},
		&entities.ActivityLog{},
	}
}

// Open connects to the configured driver. It does not migrate.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel(cfg.Env))}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("open postgres: DB_DSN is empty")
		}
		db, err := gorm.Open(postgres.Open(cfg.DBDSN), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return db, nil
	case "", "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// sqlite allows one writer; a single connection keeps transactions serialised
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenMemory returns a migrated in-memory sqlite database for tests.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// every connection would get its own empty database
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func logLevel(env string) gormlogger.LogLevel {
	if env == "test" {
		return gormlogger.Silent
	}
	return gormlogger.Warn
}
