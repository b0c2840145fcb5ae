package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type scoringService struct {
	scores  repository.ScoreRepository
	matches repository.MatchRepository
	log     zerolog.Logger
}

func NewScoringService(scores repository.ScoreRepository, matches repository.MatchRepository, logger zerolog.Logger) ScoringService {
	l := logger.With().Str("module", "service").Str("component", "scoring").Logger()
	return &scoringService{scores: scores, matches: matches, log: l}
}

// RecordBall appends one delivery. Over/ball monotonicity and duplicate
// deliveries are deliberately not enforced; the scorer owns the sequence.
func (s *scoringService) RecordBall(ctx context.Context, ball model.Ball) (model.Ball, error) {
	var ferrs []FieldError
	if ball.MatchID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must be > 0"})
	}
	if ball.Innings != 1 && ball.Innings != 2 {
		ferrs = append(ferrs, FieldError{Field: "innings", Message: "must be 1 or 2"})
	}
	if ball.Over < 0 || ball.Over > maxOverIndex {
		ferrs = append(ferrs, FieldError{Field: "over", Message: "must be between 0 and 50"})
	}
	if ball.Ball < 1 || ball.Ball > ballsPerOver {
		ferrs = append(ferrs, FieldError{Field: "ball", Message: "must be between 1 and 6"})
	}
	batter, batterErrs := validateName("batter", ball.Batter)
	ferrs = append(ferrs, batterErrs...)
	bowler, bowlerErrs := validateName("bowler", ball.Bowler)
	ferrs = append(ferrs, bowlerErrs...)
	if ball.Runs < 0 || ball.Runs > maxRunsOffBat {
		ferrs = append(ferrs, FieldError{Field: "runs", Message: "must be between 0 and 6"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("ball validation failed")
		return model.Ball{}, err
	}

	// A missing match is a broken reference, not bad field data.
	ok, err := s.matches.Exists(ctx, ball.MatchID)
	if err != nil {
		return model.Ball{}, err
	}
	if !ok {
		return model.Ball{}, repository.ErrNotFound
	}

	ball.Batter = batter
	ball.Bowler = bowler
	out, err := s.scores.Append(ctx, ball)
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", ball.MatchID).Msg("record ball failed")
		return model.Ball{}, err
	}
	s.log.Info().
		Int64("match_id", out.MatchID).
		Int("innings", out.Innings).
		Int("over", out.Over).
		Int("ball", out.Ball).
		Int("runs", out.Runs).
		Bool("wicket", out.IsWicket).
		Msg("ball recorded")
	return out, nil
}

func (s *scoringService) ListBallsByMatch(ctx context.Context, matchID int64) ([]model.Ball, error) {
	if matchID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	return s.scores.ListByMatch(ctx, matchID)
}
