package repository

import (
	"context"

	"github.com/crichub/cricket-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PlayerRepository declares persistence operations for players.
// I return domain models and surface domain errors from errors.go rather than
// driver result codes.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	List(ctx context.Context, p Page) (PageResult[model.Player], error)
	// Update renames a player; ErrNotFound when the id is absent.
	Update(ctx context.Context, id int64, name string) (model.Player, error)
	// Delete removes the player row and its team memberships. Ball records
	// keep the player's name as historical text.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// TeamRepository declares persistence operations for teams and rosters.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id int64) (model.Team, error)
	List(ctx context.Context, p Page) (PageResult[model.Team], error)
	Update(ctx context.Context, id int64, name string) (model.Team, error)
	// Delete cascades to the team's matches and their recorded balls.
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// AddPlayer links a player to the team roster. A duplicate pair surfaces
	// as ErrAlreadyExists.
	AddPlayer(ctx context.Context, teamID, playerID int64) error
	// Players returns the roster in membership insertion order.
	Players(ctx context.Context, teamID int64) ([]model.Player, error)
}

// MatchRepository declares persistence operations for matches.
// Matches are fixed at creation; there is no update surface.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id int64) (model.Match, error)
	List(ctx context.Context, p Page) (PageResult[model.Match], error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// ScoreRepository declares operations for the append-only ball log.
type ScoreRepository interface {
	Append(ctx context.Context, b model.Ball) (model.Ball, error)
	// ListByMatch returns deliveries in insertion order, which stands in for
	// chronological order since over/ball are caller-supplied coordinates.
	ListByMatch(ctx context.Context, matchID int64) ([]model.Ball, error)
}

// StatsRepository declares read-only aggregate scans over the ball log.
type StatsRepository interface {
	// MatchSummary sums one match's deliveries; zero rows yield a zero
	// summary with HasData unset, never an error.
	MatchSummary(ctx context.Context, matchID int64) (model.MatchSummary, error)
	// PlayerStats aggregates the entire ball log by player name.
	PlayerStats(ctx context.Context) ([]model.PlayerStats, error)
}
