package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
)

// Storages groups the storage backends configured for the process.
// DB is nil when no database is configured.
type Storages struct {
	DB *DB
}

// NewStorages connects every configured backend. With an empty DSN it
// returns empty Storages without touching the network.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Debug().Msg("no database configured")
		return &Storages{}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{DB: db}, nil
}

// Pingers returns the configured backends keyed by a stable check name.
func (s *Storages) Pingers() map[string]Pinger {
	pingers := make(map[string]Pinger)
	if s.DB != nil {
		pingers["database"] = s.DB
	}
	return pingers
}

// Close releases every backend.
func (s *Storages) Close() error {
	var err error
	if s.DB != nil {
		err = errors.Join(err, s.DB.Close())
	}
	return err
}
