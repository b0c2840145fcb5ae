package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/service"
)

type fakeStatsRepo struct {
	summary model.MatchSummary
	players []model.PlayerStats
	err     error
}

func (f *fakeStatsRepo) MatchSummary(_ context.Context, _ int64) (model.MatchSummary, error) {
	return f.summary, f.err
}

func (f *fakeStatsRepo) PlayerStats(_ context.Context) ([]model.PlayerStats, error) {
	return f.players, f.err
}

var _ repository.StatsRepository = (*fakeStatsRepo)(nil)

func TestStatsService_MatchSummary_InvalidID(t *testing.T) {
	svc := service.NewStatsService(&fakeStatsRepo{}, zerolog.New(io.Discard))
	if _, err := svc.MatchSummary(context.Background(), 0); !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestStatsService_MatchSummary_NoDataIsNotAnError(t *testing.T) {
	svc := service.NewStatsService(&fakeStatsRepo{}, zerolog.New(io.Discard))
	out, err := svc.MatchSummary(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.HasData || out.TotalRuns != 0 || out.BallCount != 0 {
		t.Fatalf("expected zero summary, got %+v", out)
	}
}

func TestStatsService_PlayerStats_StrikeRate(t *testing.T) {
	repo := &fakeStatsRepo{players: []model.PlayerStats{
		{Player: "Rohit", RunsScored: 10, BallsFaced: 3},
		{Player: "Starc", RunsScored: 0, BallsFaced: 0, WicketsTaken: 2},
	}}
	svc := service.NewStatsService(repo, zerolog.New(io.Discard))

	out, err := svc.PlayerStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].StrikeRate != 333.33 {
		t.Fatalf("expected strike rate 333.33, got %v", out[0].StrikeRate)
	}
	// Zero balls faced must never divide by zero.
	if out[1].StrikeRate != 0 {
		t.Fatalf("expected zero strike rate, got %v", out[1].StrikeRate)
	}
}
