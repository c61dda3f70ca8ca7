package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dashboard/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultPingTimeout bounds Ping when the caller's context has no deadline.
const DefaultPingTimeout = 2 * time.Second

// Database owns the GORM handle shared by every repository and the pool
// underneath it.
type Database struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

// ConnectionStats is the subset of sql.DBStats exported as metrics.
type ConnectionStats struct {
	MaxOpenConnections int
	OpenConnections    int
	InUse              int
	Idle               int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// NewDatabase opens the PostgreSQL pool described by cfg without SQL logging.
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return NewDatabaseWithCustomLogger(cfg, gormlogger.Default.LogMode(gormlogger.Silent))
}

// NewDatabaseWithCustomLogger opens the PostgreSQL pool described by cfg,
// logging SQL through log.
func NewDatabaseWithCustomLogger(cfg *config.DatabaseConfig, log gormlogger.Interface) (*Database, error) {
	return Open(postgres.Open(cfg.DSN()), cfg, log)
}

// Open connects through dialector, sizes the pool from cfg and pings once.
// The pool is closed again when the ping fails.
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig, log gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 log,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	d, err := Wrap(db)
	if err != nil {
		return nil, err
	}
	d.configurePool(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()
	if err := d.sqlDB.PingContext(ctx); err != nil {
		_ = d.sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return d, nil
}

// Wrap adopts an already open GORM handle, such as one built by tests.
func Wrap(db *gorm.DB) (*Database, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return &Database{DB: db, sqlDB: sqlDB}, nil
}

func (d *Database) configurePool(cfg *config.DatabaseConfig) {
	d.sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	d.sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	d.sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	d.sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
}

// Close closes the pool.
func (d *Database) Close() error {
	return d.sqlDB.Close()
}

// Ping checks that a connection can be obtained and is alive.
func (d *Database) Ping(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
	}
	return d.sqlDB.PingContext(ctx)
}

// Stats snapshots the pool counters.
func (d *Database) Stats() ConnectionStats {
	s := d.sqlDB.Stats()
	return ConnectionStats{
		MaxOpenConnections: s.MaxOpenConnections,
		OpenConnections:    s.OpenConnections,
		InUse:              s.InUse,
		Idle:               s.Idle,
		WaitCount:          s.WaitCount,
		WaitDuration:       s.WaitDuration,
		MaxIdleClosed:      s.MaxIdleClosed,
		MaxLifetimeClosed:  s.MaxLifetimeClosed,
	}
}
