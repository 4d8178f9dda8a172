package database

import (
	"HealthBook/config"
	"HealthBook/models"
	"context"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options controls how InitDB opens the store.
type Options struct {
	Driver string
	DSN    string
	Debug  bool
}

// OptionsFromConfig builds store options from the application config.
func OptionsFromConfig(cfg *config.AppConfig) Options {
	return Options{
		Driver: cfg.DBDriver,
		DSN:    cfg.DBURL,
		Debug:  cfg.IsDevelopment(),
	}
}

// InitDB initializes the database connection, creates missing tables and seeds an empty store.
func InitDB(ctx context.Context, opts Options) (*gorm.DB, error) {
	// Configure logging level based on environment
	logMode := logger.Silent
	if opts.Debug {
		logMode = logger.Info
	}

	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		PrepareStmt:                              opts.Driver == config.DriverPostgres,
		Logger:                                   logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if err := configureConnectionPool(db, opts.Driver); err != nil {
		return nil, err
	}

	if err := Ping(ctx, db); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	if err := models.SeedDoctors(db.WithContext(ctx)); err != nil {
		return nil, errors.Wrap(err, "failed to seed doctors")
	}

	log.Printf("Database initialized successfully (driver=%s).", opts.Driver)
	return db, nil
}

func openDialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case config.DriverPostgres:
		return postgres.Open(opts.DSN), nil
	case config.DriverSQLite, "":
		return sqlite.Open(sqliteDSN(opts.DSN)), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(dsn string) string {
	if dsn == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}
	return dsn + "?_pragma=foreign_keys(1)"
}

// configureConnectionPool sets up the connection pool settings for the database.
func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if driver == config.DriverPostgres {
		sqlDB.SetMaxOpenConns(40)
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetConnMaxLifetime(10 * time.Minute)
		return nil
	}
	// SQLite has a single writer, and an in-memory database lives only as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return nil
}

// Ping verifies that the database connection is functional.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	return sqlDB.Close()
}

// runMigrations creates the tables, indexes and constraints that do not exist yet.
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Doctor{},
		&models.DoctorSchedule{},
		&models.Appointment{},
	)
}
