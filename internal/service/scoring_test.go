package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/service"
)

type fakeScoreRepo struct {
	nextID int64
	balls  []model.Ball
}

func newFakeScoreRepo() *fakeScoreRepo { return &fakeScoreRepo{nextID: 1} }

func (f *fakeScoreRepo) Append(_ context.Context, b model.Ball) (model.Ball, error) {
	b.ID = f.nextID
	f.nextID++
	f.balls = append(f.balls, b)
	return b, nil
}

func (f *fakeScoreRepo) ListByMatch(_ context.Context, matchID int64) ([]model.Ball, error) {
	var out []model.Ball
	for _, b := range f.balls {
		if b.MatchID == matchID {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ repository.ScoreRepository = (*fakeScoreRepo)(nil)

func newScoringFixture() (*fakeScoreRepo, *fakeMatchRepo, service.ScoringService) {
	scores := newFakeScoreRepo()
	matches := newFakeMatchRepo()
	svc := service.NewScoringService(scores, matches, zerolog.New(io.Discard))
	return scores, matches, svc
}

func validBall(matchID int64) model.Ball {
	return model.Ball{
		MatchID: matchID, Innings: 1, Over: 0, Ball: 1,
		Batter: "Rohit", Bowler: "Starc", Runs: 4, IsFour: true,
	}
}

func TestScoringService_RecordBall_Validation(t *testing.T) {
	_, matches, svc := newScoringFixture()
	ctx := context.Background()
	match, _ := matches.Create(ctx, model.Match{Team1ID: 1, Team2ID: 2, TossWinnerID: 1, TossChoice: "Bat", Overs: 20, Date: "2026-08-30"})

	cases := []struct {
		name      string
		mutate    func(*model.Ball)
		wantField string
	}{
		{"innings zero", func(b *model.Ball) { b.Innings = 0 }, "innings"},
		{"innings three", func(b *model.Ball) { b.Innings = 3 }, "innings"},
		{"over negative", func(b *model.Ball) { b.Over = -1 }, "over"},
		{"over too high", func(b *model.Ball) { b.Over = 51 }, "over"},
		{"ball zero", func(b *model.Ball) { b.Ball = 0 }, "ball"},
		{"ball seven", func(b *model.Ball) { b.Ball = 7 }, "ball"},
		{"runs negative", func(b *model.Ball) { b.Runs = -1 }, "runs"},
		{"runs seven", func(b *model.Ball) { b.Runs = 7 }, "runs"},
		{"blank batter", func(b *model.Ball) { b.Batter = " " }, "batter"},
		{"blank bowler", func(b *model.Ball) { b.Bowler = "" }, "bowler"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ball := validBall(match.ID)
			tc.mutate(&ball)
			_, err := svc.RecordBall(ctx, ball)
			if !serviceErrIsInvalid(err) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			found := false
			for _, f := range service.FieldErrors(err) {
				if f.Field == tc.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected field error for %s, got %+v", tc.wantField, service.FieldErrors(err))
			}
		})
	}
}

func TestScoringService_RecordBall_UnknownMatch(t *testing.T) {
	_, _, svc := newScoringFixture()
	_, err := svc.RecordBall(context.Background(), validBall(404))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoringService_RecordBall_OK(t *testing.T) {
	scores, matches, svc := newScoringFixture()
	ctx := context.Background()
	match, _ := matches.Create(ctx, model.Match{Team1ID: 1, Team2ID: 2, TossWinnerID: 1, TossChoice: "Bat", Overs: 20, Date: "2026-08-30"})

	ball := validBall(match.ID)
	ball.Batter = " Rohit "
	out, err := svc.RecordBall(ctx, ball)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID == 0 || out.Batter != "Rohit" {
		t.Fatalf("expected stored ball with trimmed batter, got %+v", out)
	}
	if len(scores.balls) != 1 {
		t.Fatalf("expected one appended ball, got %d", len(scores.balls))
	}
}

// Permissive by design: the same over/ball coordinates may be submitted twice.
func TestScoringService_RecordBall_NoDuplicateDetection(t *testing.T) {
	_, matches, svc := newScoringFixture()
	ctx := context.Background()
	match, _ := matches.Create(ctx, model.Match{Team1ID: 1, Team2ID: 2, TossWinnerID: 1, TossChoice: "Bat", Overs: 20, Date: "2026-08-30"})

	if _, err := svc.RecordBall(ctx, validBall(match.ID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RecordBall(ctx, validBall(match.ID)); err != nil {
		t.Fatalf("expected duplicate coordinates to be accepted, got %v", err)
	}

	balls, err := svc.ListBallsByMatch(ctx, match.ID)
	if err != nil || len(balls) != 2 {
		t.Fatalf("expected both deliveries recorded: %v %d", err, len(balls))
	}
}

func TestScoringService_ListBallsByMatch_InvalidID(t *testing.T) {
	_, _, svc := newScoringFixture()
	if _, err := svc.ListBallsByMatch(context.Background(), -1); !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
