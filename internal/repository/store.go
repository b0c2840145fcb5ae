package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/crichub/cricket-stats-service/internal/config"
)

// Store wraps the database/sql handle to the file-backed SQLite store.
type Store struct {
	db *sql.DB
}

// Open creates the store file if absent and returns a verified handle.
func Open(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Store, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	// 1. Build the DSN through url.Values for correct escaping. Foreign keys
	// are off by default in SQLite and the cascade rules depend on them.
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.Database.BusyTimeout))
	dsn := fmt.Sprintf("file:%s?%s", cfg.Database.Path, q.Encode())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	// 2. Keep the pool small; a single local file gains nothing from fan-out.
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetConnMaxIdleTime(time.Minute)

	// 3. Verify the handle with a timeout so startup cannot hang.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite store: %w", err)
	}

	logger.Info().
		Str("path", cfg.Database.Path).
		Int("max_conns", cfg.Database.MaxOpenConns).
		Msg("Successfully opened SQLite store")

	return &Store{db: db}, nil
}

// DB exposes the underlying handle to the sqlite repositories.
func (s *Store) DB() *sql.DB { return s.db }

// Ping satisfies the Pinger contract for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("store is not open")
	}
	return s.db.PingContext(ctx)
}

// Close releases the store handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
