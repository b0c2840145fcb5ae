package sqlite

import (
	"context"
	"database/sql"

	"github.com/crichub/cricket-stats-service/internal/repository"
)

type pinger struct{ db *sql.DB }

// NewPinger adapts the sql handle to the repository.Pinger interface.
func NewPinger(db *sql.DB) repository.Pinger { return &pinger{db: db} }

func (p *pinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }
