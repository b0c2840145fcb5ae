// Package sqlite implements the repository contracts over a file-backed
// SQLite store accessed through database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Init creates all tables needed for the application.
// Safe to call on every process start - uses IF NOT EXISTS.
func Init(ctx context.Context, db *sql.DB) error {
	if err := ensureDB(db); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Reset destroys all data and re-creates the empty schema in one transaction.
// Dropping child tables first keeps foreign key enforcement happy.
func Reset(ctx context.Context, db *sql.DB) error {
	if err := ensureDB(db); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const drops = `
DROP TABLE IF EXISTS scores;
DROP TABLE IF EXISTS matches;
DROP TABLE IF EXISTS team_players;
DROP TABLE IF EXISTS teams;
DROP TABLE IF EXISTS players;
`
	if _, err := tx.ExecContext(ctx, drops); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to re-create schema: %w", err)
	}
	return tx.Commit()
}

// SchemaManager bundles Init and Reset behind a value that higher layers can
// hold without knowing about sql handles.
type SchemaManager struct{ db *sql.DB }

func NewSchemaManager(db *sql.DB) *SchemaManager { return &SchemaManager{db: db} }

func (m *SchemaManager) Init(ctx context.Context) error  { return Init(ctx, m.db) }
func (m *SchemaManager) Reset(ctx context.Context) error { return Reset(ctx, m.db) }

// "over" is quoted throughout: it became a reserved word with SQLite's window
// function support.
const schema = `
-- Players
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

-- Rosters (many-to-many), duplicate assignments rejected at the schema level
CREATE TABLE IF NOT EXISTS team_players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
    UNIQUE (team_id, player_id)
);

CREATE INDEX IF NOT EXISTS idx_team_players_team_id ON team_players(team_id);

-- Matches; deleting a team removes its matches
CREATE TABLE IF NOT EXISTS matches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    team1_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    team2_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    toss_winner_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    toss_choice TEXT NOT NULL CHECK (toss_choice IN ('Bat', 'Bowl')),
    overs INTEGER NOT NULL CHECK (overs BETWEEN 1 AND 50),
    match_date TEXT NOT NULL
);

-- Ball-by-ball log, append-only; batter/bowler are names, not player ids
CREATE TABLE IF NOT EXISTS scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    match_id INTEGER NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
    innings INTEGER NOT NULL CHECK (innings IN (1, 2)),
    "over" INTEGER NOT NULL CHECK ("over" BETWEEN 0 AND 50),
    ball INTEGER NOT NULL CHECK (ball BETWEEN 1 AND 6),
    batter TEXT NOT NULL,
    bowler TEXT NOT NULL,
    runs INTEGER NOT NULL CHECK (runs BETWEEN 0 AND 6),
    is_four INTEGER NOT NULL DEFAULT 0,
    is_six INTEGER NOT NULL DEFAULT 0,
    is_wicket INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_scores_match_id ON scores(match_id);
`
