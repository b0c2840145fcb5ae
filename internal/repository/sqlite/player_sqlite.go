package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type playerRepository struct{ db *sql.DB }

func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`INSERT INTO players (name) VALUES (?) RETURNING id, name`,
		p.Name,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		return model.Player{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx, `SELECT id, name FROM players WHERE id = ?`, id)
	var out model.Player
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *playerRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Player], error) {
	if err := ensureDB(r.db); err != nil {
		return repository.PageResult[model.Player]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.db)
	rows, err := exec.QueryContext(ctx,
		`SELECT id, name, COUNT(*) OVER() AS total
		 FROM players
		 ORDER BY id
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Player]{}, repository.MapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()
	res := repository.PageResult[model.Player]{Items: make([]model.Player, 0, limit)}
	for rows.Next() {
		var it model.Player
		var total int
		if err := rows.Scan(&it.ID, &it.Name, &total); err != nil {
			return repository.PageResult[model.Player]{}, repository.MapSQLiteError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	return res, rows.Err()
}

func (r *playerRepository) Update(ctx context.Context, id int64, name string) (model.Player, error) {
	if err := ensureDB(r.db); err != nil {
		return model.Player{}, err
	}
	exec := getQ(ctx, r.db)
	row := exec.QueryRowContext(ctx,
		`UPDATE players SET name = ? WHERE id = ? RETURNING id, name`,
		name, id,
	)
	var out model.Player
	if err := row.Scan(&out.ID, &out.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Player{}, repository.ErrNotFound
		}
		return model.Player{}, repository.MapSQLiteError(err)
	}
	return out, nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db); err != nil {
		return err
	}
	exec := getQ(ctx, r.db)
	res, err := exec.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
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

// Exists performs a lightweight check to see if a player with the given ID exists.
func (r *playerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensureDB(r.db); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.db)
	err := exec.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapSQLiteError(err)
	}
	return exists, nil
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
