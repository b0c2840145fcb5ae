package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type teamRepository struct{ db *sql.DB }

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`INSERT INTO teams (name) VALUES (?) RETURNING id, name`,
		t.Name,
	)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		return model.Team{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (model.Team, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx, `SELECT id, name FROM teams WHERE id = ?`, id)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Team{}, repository.ErrNotFound
		}
		return model.Team{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *teamRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Team], error) {
	if err := ensureDB(r.db); err != nil {
		return repository.PageResult[model.Team]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT id, name, COUNT(*) OVER() AS total
		 FROM teams
		 ORDER BY id
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Team]{}, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := repository.PageResult[model.Team]{Items: make([]model.Team, 0, limit)}
	for rows.Next() {
		var it model.Team
		var total int
		if err := rows.Scan(&it.ID, &it.Name, &total); err != nil {
			return repository.PageResult[model.Team]{}, repository.MapSQLiteError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	return res, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, id int64, name string) (model.Team, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`UPDATE teams SET name = ? WHERE id = ? RETURNING id, name`,
		name, id,
	)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Team{}, repository.ErrNotFound
		}
		return model.Team{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

// Delete removes the team; matches referencing it, and their recorded balls,
// go with it through the schema's cascade rules.
func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	exec := getQ(ctx, r.db)
	res, err := exec.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return repository.MapSQLiteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return repository.MapSQLiteError(err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *teamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensureDB(r.db); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.db)
	err := exec.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapSQLiteError(err)
	}
	return exists, nil
}

// AddPlayer links a player to the roster. The UNIQUE(team_id, player_id)
// constraint turns a duplicate assignment into ErrAlreadyExists.
func (r *teamRepository) AddPlayer(ctx context.Context, teamID, playerID int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	exec := getQ(ctx, r.db)
	if _, err := exec.ExecContext(ctx,
		`INSERT INTO team_players (team_id, player_id) VALUES (?, ?)`,
		teamID, playerID,
	); err != nil {
		return repository.MapSQLiteError(err)
	}
	return nil
}

func (r *teamRepository) Players(ctx context.Context, teamID int64) ([]model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT p.id, p.name
		 FROM team_players tp
		 JOIN players p ON p.id = tp.player_id
		 WHERE tp.team_id = ?
		 ORDER BY tp.id`,
		teamID,
	)
	if err != nil {
		return nil, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := make([]model.Player, 0, 11)
	for rows.Next() {
		var it model.Player
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, repository.MapSQLiteError(err)
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

var _ repository.TeamRepository = (*teamRepository)(nil)
