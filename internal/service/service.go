// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"io"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrExportIO marks export failures caused by an unwritable destination.
var ErrExportIO = errors.New("export io failure")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PlayerService defines player-oriented use cases.
type PlayerService interface {
	RegisterPlayer(ctx context.Context, name string) (model.Player, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, error)
	ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error)
	UpdatePlayer(ctx context.Context, id int64, name string) (model.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
}

// TeamService defines team and roster use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string) (model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	ListTeams(ctx context.Context, page repository.Page) (repository.PageResult[model.Team], error)
	UpdateTeam(ctx context.Context, id int64, name string) (model.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	AddPlayerToTeam(ctx context.Context, teamID, playerID int64) error
	ListTeamPlayers(ctx context.Context, teamID int64) ([]model.Player, error)
}

// MatchService defines match-oriented use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, team1ID, team2ID, tossWinnerID int64, tossChoice string, overs int, date string) (model.Match, error)
	GetMatch(ctx context.Context, id int64) (model.Match, error)
	ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error)
}

// ScoringService defines the append-only delivery log use cases.
type ScoringService interface {
	RecordBall(ctx context.Context, ball model.Ball) (model.Ball, error)
	ListBallsByMatch(ctx context.Context, matchID int64) ([]model.Ball, error)
}

// StatsService defines derived-aggregate use cases.
type StatsService interface {
	MatchSummary(ctx context.Context, matchID int64) (model.MatchSummary, error)
	PlayerStats(ctx context.Context) ([]model.PlayerStats, error)
}

// ExportService serializes a match's delivery log as delimited text.
type ExportService interface {
	// ExportMatch writes the CSV to destination and reports data rows written.
	ExportMatch(ctx context.Context, matchID int64, destination string) (int, error)
	// WriteMatch streams the same CSV to w, for download-style delivery.
	WriteMatch(ctx context.Context, matchID int64, w io.Writer) (int, error)
}

// AdminService exposes the destructive full-reset operation.
type AdminService interface {
	Reset(ctx context.Context) error
}
