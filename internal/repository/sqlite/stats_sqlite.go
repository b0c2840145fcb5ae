package sqlite

import (
	"context"
	"database/sql"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type statsRepository struct{ db *sql.DB }

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// MatchSummary sums one match's deliveries in a single scan. COALESCE keeps an
// empty match at zero instead of NULL, so the aggregate never errors.
func (r *statsRepository) MatchSummary(ctx context.Context, matchID int64) (model.MatchSummary, error) {
	if err := ensureDB(r.db); err != nil {
		return model.MatchSummary{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(runs), 0) AS total_runs,
			COALESCE(SUM(is_wicket), 0) AS total_wickets,
			COALESCE(SUM(is_four), 0) AS total_fours,
			COALESCE(SUM(is_six), 0) AS total_sixes,
			COUNT(*) AS ball_count
		 FROM scores WHERE match_id = ?`,
		matchID,
	)
	var out model.MatchSummary
	if err := row.Scan(&out.TotalRuns, &out.TotalWickets, &out.TotalFours, &out.TotalSixes, &out.BallCount); err != nil {
		return model.MatchSummary{}, repository.MapSQLiteError(err)
	}
	out.HasData = out.BallCount > 0
	return out, nil
}

// PlayerStats aggregates the whole ball log by player name. Batting and
// bowling contributions are folded together through a UNION ALL so a player
// appearing only as bowler still gets a row. Strike rate is derived in the
// service layer where division by zero can be guarded.
func (r *statsRepository) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT player,
			SUM(runs_scored) AS runs_scored,
			SUM(balls_faced) AS balls_faced,
			SUM(fours) AS fours,
			SUM(sixes) AS sixes,
			SUM(wickets) AS wickets
		 FROM (
			SELECT batter AS player, runs AS runs_scored, 1 AS balls_faced,
			       is_four AS fours, is_six AS sixes, 0 AS wickets
			FROM scores
			UNION ALL
			SELECT bowler, 0, 0, 0, 0, is_wicket FROM scores
		 )
		 GROUP BY player
		 ORDER BY player`,
	)
	if err != nil {
		return nil, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := make([]model.PlayerStats, 0, 22)
	for rows.Next() {
		var it model.PlayerStats
		if err := rows.Scan(&it.Player, &it.RunsScored, &it.BallsFaced, &it.Fours, &it.Sixes, &it.WicketsTaken); err != nil {
			return nil, repository.MapSQLiteError(err)
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

var _ repository.StatsRepository = (*statsRepository)(nil)
