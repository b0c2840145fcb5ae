package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type teamService struct {
	teams   repository.TeamRepository
	players repository.PlayerRepository
	log     zerolog.Logger
}

func NewTeamService(teams repository.TeamRepository, players repository.PlayerRepository, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{teams: teams, players: players, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	start := time.Now()
	trimmed, ferrs := validateName("name", name)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("name_raw", name).Interface("field_errors", ferrs).Msg("team validation failed")
		return model.Team{}, err
	}

	out, err := s.teams.Create(ctx, model.Team{Name: trimmed})
	if err != nil {
		s.log.Error().Err(err).Str("name", trimmed).Msg("create team failed")
		return model.Team{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("team_id", out.ID).Msg("team created")
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	if id <= 0 {
		return model.Team{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context, page repository.Page) (repository.PageResult[model.Team], error) {
	p := normalizePage(page)
	res, err := s.teams.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list teams failed")
		return repository.PageResult[model.Team]{}, err
	}
	return res, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int64, name string) (model.Team, error) {
	var ferrs []FieldError
	if id <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	trimmed, nameErrs := validateName("name", name)
	ferrs = append(ferrs, nameErrs...)
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Team{}, err
	}

	out, err := s.teams.Update(ctx, id, trimmed)
	if err != nil {
		s.log.Error().Err(err).Int64("team_id", id).Msg("update team failed")
		return model.Team{}, err
	}
	s.log.Info().Int64("team_id", id).Msg("team renamed")
	return out, nil
}

// DeleteTeam removes the team and, through the schema's cascade, every match
// it appears in together with those matches' deliveries.
func (s *teamService) DeleteTeam(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("team_id", id).Msg("delete team failed")
		return err
	}
	s.log.Warn().Int64("team_id", id).Msg("team deleted with dependent matches")
	return nil
}

func (s *teamService) AddPlayerToTeam(ctx context.Context, teamID, playerID int64) error {
	var ferrs []FieldError
	if teamID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "team_id", Message: "must be > 0"})
	}
	if playerID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "player_id", Message: "must be > 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return err
	}

	// Existence checks before attempting persistence, so a missing reference
	// surfaces as not-found rather than a bare constraint violation.
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return err
	}
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return err
	}

	if err := s.teams.AddPlayer(ctx, teamID, playerID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			s.log.Debug().Int64("team_id", teamID).Int64("player_id", playerID).Msg("duplicate roster assignment rejected")
		} else {
			s.log.Error().Err(err).Int64("team_id", teamID).Int64("player_id", playerID).Msg("add player to team failed")
		}
		return err
	}
	s.log.Info().Int64("team_id", teamID).Int64("player_id", playerID).Msg("player assigned to team")
	return nil
}

func (s *teamService) ListTeamPlayers(ctx context.Context, teamID int64) ([]model.Player, error) {
	if teamID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "team_id", Message: "must be > 0"}})
	}
	if _, err := s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.teams.Players(ctx, teamID)
}
