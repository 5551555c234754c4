package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrEmptyDSN is returned when no connection string is configured.
var ErrEmptyDSN = errors.New("postgres DSN is empty")

type options struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	pingTimeout     time.Duration
	logLevel        gormlogger.LogLevel
}

// Option tunes the connection pool.
type Option func(*options)

// WithPool sets pool limits. Zero values keep the database/sql defaults.
func WithPool(maxOpen, maxIdle int, lifetime time.Duration) Option {
	return func(o *options) {
		o.maxOpenConns = maxOpen
		o.maxIdleConns = maxIdle
		o.connMaxLifetime = lifetime
	}
}

// WithLogLevel sets GORM's SQL logging level.
func WithLogLevel(level gormlogger.LogLevel) Option {
	return func(o *options) { o.logLevel = level }
}

func defaultOptions() options {
	return options{
		maxOpenConns:    20,
		maxIdleConns:    5,
		connMaxLifetime: 30 * time.Minute,
		pingTimeout:     5 * time.Second,
		logLevel:        gormlogger.Warn,
	}
}

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string, opts ...Option) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrEmptyDSN
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(cfg.logLevel),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.maxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.maxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Open connects and returns the DB together with a function closing the pool.
func Open(ctx context.Context, dsn string, opts ...Option) (*gorm.DB, func(), error) {
	db, err := Connect(ctx, dsn, opts...)
	if err != nil {
		return nil, func() {}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, func() {}, err
	}
	return db, func() { _ = sqlDB.Close() }, nil
}
