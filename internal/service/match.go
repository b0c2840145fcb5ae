package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type matchService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, tx repository.TxManager, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, teams: teams, tx: tx, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, team1ID, team2ID, tossWinnerID int64, tossChoice string, overs int, date string) (model.Match, error) {
	dateTrimmed := strings.TrimSpace(date)
	choice := normalizeTossChoice(tossChoice)

	var ferrs []FieldError
	if team1ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "team1_id", Message: "must be > 0"})
	}
	if team2ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "team2_id", Message: "must be > 0"})
	}
	if team1ID > 0 && team2ID > 0 && team1ID == team2ID {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "a team cannot play itself"})
	}
	if tossWinnerID != team1ID && tossWinnerID != team2ID {
		ferrs = append(ferrs, FieldError{Field: "toss_winner_id", Message: "must be one of the two competing teams"})
	}
	if choice == "" {
		ferrs = append(ferrs, FieldError{Field: "toss_choice", Message: "must be Bat or Bowl"})
	}
	if overs < minOvers || overs > maxOvers {
		ferrs = append(ferrs, FieldError{Field: "overs", Message: "must be between 1 and 50"})
	}
	if dateTrimmed == "" {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be set"})
	}

	// Early exit if basic structure is invalid - do not touch the database.
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed (structure)")
		return model.Match{}, err
	}

	// Existence checks before attempting persistence.
	var existenceErrs []FieldError
	if _, err := s.teams.GetByID(ctx, team1ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "team1_id", Message: "team does not exist"})
		} else {
			return model.Match{}, err
		}
	}
	if _, err := s.teams.GetByID(ctx, team2ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "team2_id", Message: "team does not exist"})
		} else {
			return model.Match{}, err
		}
	}
	if err := NewInvalidInputError(existenceErrs); err != nil {
		s.log.Debug().Interface("field_errors", existenceErrs).Msg("match validation failed (existence)")
		return model.Match{}, err
	}

	// One INSERT today; the transaction boundary stays so accompanying rows
	// (e.g. a squad snapshot) can join later without reshaping callers.
	var out model.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.matches.Create(ctx, model.Match{
			Team1ID:      team1ID,
			Team2ID:      team2ID,
			TossWinnerID: tossWinnerID,
			TossChoice:   choice,
			Overs:        overs,
			Date:         dateTrimmed,
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("team1_id", team1ID).Int64("team2_id", team2ID).Msg("create match failed")
		return model.Match{}, err
	}
	s.log.Info().Int64("match_id", out.ID).Str("toss_choice", out.TossChoice).Msg("match created")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	if id <= 0 {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error) {
	p := normalizePage(page)
	res, err := s.matches.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list matches failed")
		return repository.PageResult[model.Match]{}, err
	}
	return res, nil
}
