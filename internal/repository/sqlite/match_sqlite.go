package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type matchRepository struct{ db *sql.DB }

func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`INSERT INTO matches (team1_id, team2_id, toss_winner_id, toss_choice, overs, match_date)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id, team1_id, team2_id, toss_winner_id, toss_choice, overs, match_date`,
		m.Team1ID, m.Team2ID, m.TossWinnerID, m.TossChoice, m.Overs, m.Date,
	)
	var out model.Match
	if err := row.Scan(&out.ID, &out.Team1ID, &out.Team2ID, &out.TossWinnerID, &out.TossChoice, &out.Overs, &out.Date); err != nil {
		return model.Match{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (model.Match, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`SELECT id, team1_id, team2_id, toss_winner_id, toss_choice, overs, match_date
		 FROM matches WHERE id = ?`, id,
	)
	var out model.Match
	if err := row.Scan(&out.ID, &out.Team1ID, &out.Team2ID, &out.TossWinnerID, &out.TossChoice, &out.Overs, &out.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *matchRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	if err := ensureDB(r.db); err != nil {
		return repository.PageResult[model.Match]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT id, team1_id, team2_id, toss_winner_id, toss_choice, overs, match_date, COUNT(*) OVER() AS total
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Match]{}, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := repository.PageResult[model.Match]{Items: make([]model.Match, 0, limit)}
	for rows.Next() {
		var it model.Match
		var total int
		if err := rows.Scan(&it.ID, &it.Team1ID, &it.Team2ID, &it.TossWinnerID, &it.TossChoice, &it.Overs, &it.Date, &total); err != nil {
			return repository.PageResult[model.Match]{}, repository.MapSQLiteError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	return res, rows.Err()
}

func (r *matchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensureDB(r.db); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.db)
	err := exec.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM matches WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapSQLiteError(err)
	}
	return exists, nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
