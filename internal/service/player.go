package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

// playerService holds player use-case logic: validation + orchestration, no transport / SQL details.
type playerService struct {
	repo repository.PlayerRepository
	log  zerolog.Logger
}

func NewPlayerService(repo repository.PlayerRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{repo: repo, log: l}
}

func (s *playerService) RegisterPlayer(ctx context.Context, name string) (model.Player, error) {
	start := time.Now()
	trimmed, ferrs := validateName("name", name)
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Str("name_raw", name).Interface("field_errors", ferrs).Msg("player validation failed")
		return model.Player{}, err
	}

	out, err := s.repo.Create(ctx, model.Player{Name: trimmed})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", trimmed).Msg("register player failed")
		return model.Player{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("player_id", out.ID).Msg("player registered")
	return out, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	if id <= 0 {
		return model.Player{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *playerService) ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list players failed")
		return repository.PageResult[model.Player]{}, err
	}
	return res, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int64, name string) (model.Player, error) {
	var ferrs []FieldError
	if id <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	trimmed, nameErrs := validateName("name", name)
	ferrs = append(ferrs, nameErrs...)
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Player{}, err
	}

	out, err := s.repo.Update(ctx, id, trimmed)
	if err != nil {
		s.log.Error().Err(err).Int64("player_id", id).Msg("update player failed")
		return model.Player{}, err
	}
	s.log.Info().Int64("player_id", id).Msg("player renamed")
	return out, nil
}

// DeletePlayer removes the registration row. Balls already recorded keep the
// player's name, so history stays readable.
func (s *playerService) DeletePlayer(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("player_id", id).Msg("delete player failed")
		return err
	}
	s.log.Info().Int64("player_id", id).Msg("player deleted")
	return nil
}
