package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names registered by the imported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
)

// DB wraps *sql.DB with the classifier used to retry transient ping
// failures.
type DB struct {
	*sql.DB
	driver             string
	pingTimeout        time.Duration
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database described by cfg and makes sure it answers
// a ping before returning. Transient failures (see [PostgresErrorClassifier])
// are retried up to three times with a linear backoff.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}

	driver, dsn, err := driverFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("cannot choose database driver")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             driver,
		pingTimeout:        cfg.PingTimeout,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}

	if err = db.pingWithRetry(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	return db, nil
}

// Driver returns the name of the database/sql driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// PingContext pings the database, bounded by the configured ping timeout.
func (db *DB) PingContext(ctx context.Context) error {
	if db.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.pingTimeout)
		defer cancel()
	}

	return db.DB.PingContext(ctx)
}

func (db *DB) pingWithRetry(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || attempt == pingAttempts {
			break
		}

		db.logger.Warn().Err(err).
			Str("func", "pingWithRetry").
			Int("attempt", attempt).
			Msg("database is not reachable yet, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrPingingDatabase, ctx.Err())
		case <-time.After(time.Duration(attempt) * pingBackoff):
		}
	}

	db.logger.Err(err).Str("func", "pingWithRetry").Msg("error connecting database (ping)")
	return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
}

// driverFromDSN picks the driver from the DSN scheme. postgres:// and
// postgresql:// go to pgx; sqlite:// is stripped and handed to sqlite3 as
// are plain paths and file: URIs. Any other scheme:// prefix is rejected so
// a mistyped URL never becomes a local sqlite file.
func driverFromDSN(dsn string) (driver, source string, err error) {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, dsn[len("sqlite://"):], nil
	case strings.Contains(lower, "://"):
		scheme, _, _ := strings.Cut(dsn, "://")
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, scheme)
	default:
		return DriverSQLite, dsn, nil
	}
}
