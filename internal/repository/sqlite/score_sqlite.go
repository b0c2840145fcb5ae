package sqlite

import (
	"context"
	"database/sql"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type scoreRepository struct{ db *sql.DB }

func NewScoreRepository(db *sql.DB) repository.ScoreRepository {
	return &scoreRepository{db: db}
}

// Append records one delivery. No sequencing or duplicate detection: over and
// ball are caller-supplied coordinates, the row id is the chronology.
func (r *scoreRepository) Append(ctx context.Context, b model.Ball) (model.Ball, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Ball{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`INSERT INTO scores (match_id, innings, "over", ball, batter, bowler, runs, is_four, is_six, is_wicket)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id, match_id, innings, "over", ball, batter, bowler, runs, is_four, is_six, is_wicket`,
		b.MatchID, b.Innings, b.Over, b.Ball, b.Batter, b.Bowler, b.Runs, b.IsFour, b.IsSix, b.IsWicket,
	)
	var out model.Ball
	if err := row.Scan(&out.ID, &out.MatchID, &out.Innings, &out.Over, &out.Ball, &out.Batter, &out.Bowler, &out.Runs, &out.IsFour, &out.IsSix, &out.IsWicket); err != nil {
		return model.Ball{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *scoreRepository) ListByMatch(ctx context.Context, matchID int64) ([]model.Ball, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT id, match_id, innings, "over", ball, batter, bowler, runs, is_four, is_six, is_wicket
		 FROM scores WHERE match_id = ? ORDER BY id`, matchID,
	)
	if err != nil {
		return nil, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := make([]model.Ball, 0, 64)
	for rows.Next() {
		var it model.Ball
		if err := rows.Scan(&it.ID, &it.MatchID, &it.Innings, &it.Over, &it.Ball, &it.Batter, &it.Bowler, &it.Runs, &it.IsFour, &it.IsSix, &it.IsWicket); err != nil {
			return nil, repository.MapSQLiteError(err)
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

var _ repository.ScoreRepository = (*scoreRepository)(nil)
