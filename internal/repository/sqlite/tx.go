package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crichub/cricket-stats-service/internal/repository"
)

// q is a minimal query executor implemented by both *sql.DB and *sql.Tx.
type q interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func getQ(ctx context.Context, db *sql.DB) q {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}

const defaultPageLimit = 50

func sanitizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type txManager struct{ db *sql.DB }

func NewTxManager(db *sql.DB) repository.TxManager { return &txManager{db: db} }

func (m *txManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.MapSQLiteError(err)
	}
	defer func() {
		// If not committed yet, rollback; sql.ErrTxDone is the normal case.
		_ = tx.Rollback()
	}()

	ctx = withTx(ctx, tx)
	if err := fn(ctx); err != nil {
		_ = tx.Rollback()
		return repository.MapSQLiteError(err)
	}

	if err := tx.Commit(); err != nil {
		return repository.MapSQLiteError(err)
	}
	return nil
}

// ensure interfaces are satisfied at compile time
var _ repository.TxManager = (*txManager)(nil)

// helper to assert we didn't accidentally nil the handle
func ensureDB(db *sql.DB) error {
	if db == nil {
		return errors.New("sqlite handle is nil")
	}
	return nil
}
