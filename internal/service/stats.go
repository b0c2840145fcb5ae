package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
)

type statsService struct {
	stats repository.StatsRepository
	log   zerolog.Logger
}

func NewStatsService(stats repository.StatsRepository, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{stats: stats, log: l}
}

// MatchSummary returns the single-scan aggregates for one match. An unknown
// match id and a match without recorded balls both come back as the zero
// summary with HasData unset; neither is an error.
func (s *statsService) MatchSummary(ctx context.Context, matchID int64) (model.MatchSummary, error) {
	if matchID <= 0 {
		return model.MatchSummary{}, NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	out, err := s.stats.MatchSummary(ctx, matchID)
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", matchID).Msg("match summary failed")
		return model.MatchSummary{}, err
	}
	return out, nil
}

// PlayerStats aggregates the whole delivery log per player name and derives
// strike rate here, where the zero-balls case can be guarded.
func (s *statsService) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	rows, err := s.stats.PlayerStats(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("player stats failed")
		return nil, err
	}
	for i := range rows {
		rows[i].StrikeRate = strikeRate(rows[i].RunsScored, rows[i].BallsFaced)
	}
	return rows, nil
}

// strikeRate is runs per 100 balls faced, rounded to two decimals.
// A player with no balls faced reports 0 rather than dividing by zero.
func strikeRate(runs, ballsFaced int) float64 {
	if ballsFaced == 0 {
		return 0
	}
	return math.Round(float64(runs)*100/float64(ballsFaced)*100) / 100
}
