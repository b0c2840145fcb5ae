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

type fakeMatchRepo struct {
	nextID int64
	items  map[int64]model.Match
	order  []int64
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{nextID: 1, items: map[int64]model.Match{}}
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	m.ID = f.nextID
	f.nextID++
	f.items[m.ID] = m
	f.order = append(f.order, m.ID)
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (model.Match, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeMatchRepo) List(_ context.Context, _ repository.Page) (repository.PageResult[model.Match], error) {
	res := repository.PageResult[model.Match]{}
	for i := len(f.order) - 1; i >= 0; i-- {
		res.Items = append(res.Items, f.items[f.order[i]])
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeMatchRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

// passthroughTx runs the unit of work without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

func newMatchFixture() (*fakeMatchRepo, *fakeTeamRepo, service.MatchService) {
	players := newFakePlayerRepo()
	teams := newFakeTeamRepo(players)
	matches := newFakeMatchRepo()
	svc := service.NewMatchService(matches, teams, passthroughTx{}, zerolog.New(io.Discard))
	return matches, teams, svc
}

func TestMatchService_CreateMatch_Validation(t *testing.T) {
	_, teams, svc := newMatchFixture()
	ctx := context.Background()
	t1, _ := teams.Create(ctx, model.Team{Name: "India"})
	t2, _ := teams.Create(ctx, model.Team{Name: "Australia"})

	cases := []struct {
		name       string
		team1      int64
		team2      int64
		tossWinner int64
		choice     string
		overs      int
		date       string
		wantField  string
	}{
		{"same team", t1.ID, t1.ID, t1.ID, "Bat", 20, "2026-08-30", "teams"},
		{"overs too low", t1.ID, t2.ID, t1.ID, "Bat", 0, "2026-08-30", "overs"},
		{"overs too high", t1.ID, t2.ID, t1.ID, "Bat", 51, "2026-08-30", "overs"},
		{"toss winner outside fixture", t1.ID, t2.ID, 99, "Bat", 20, "2026-08-30", "toss_winner_id"},
		{"bad toss choice", t1.ID, t2.ID, t1.ID, "Field", 20, "2026-08-30", "toss_choice"},
		{"blank date", t1.ID, t2.ID, t1.ID, "Bat", 20, "  ", "date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateMatch(context.Background(), tc.team1, tc.team2, tc.tossWinner, tc.choice, tc.overs, tc.date)
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

func TestMatchService_CreateMatch_TeamExistence(t *testing.T) {
	_, teams, svc := newMatchFixture()
	ctx := context.Background()
	t1, _ := teams.Create(ctx, model.Team{Name: "India"})

	_, err := svc.CreateMatch(ctx, t1.ID, 42, 42, "Bowl", 20, "2026-08-30")
	if !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input for missing team, got %v", err)
	}
	found := false
	for _, f := range service.FieldErrors(err) {
		if f.Field == "team2_id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected team2_id existence error, got %+v", service.FieldErrors(err))
	}
}

func TestMatchService_CreateMatch_NormalizesTossChoice(t *testing.T) {
	_, teams, svc := newMatchFixture()
	ctx := context.Background()
	t1, _ := teams.Create(ctx, model.Team{Name: "India"})
	t2, _ := teams.Create(ctx, model.Team{Name: "Australia"})

	out, err := svc.CreateMatch(ctx, t1.ID, t2.ID, t2.ID, "bowl", 50, "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TossChoice != "Bowl" {
		t.Fatalf("expected normalized toss choice, got %q", out.TossChoice)
	}
}

func TestMatchService_GetMatch(t *testing.T) {
	matches, teams, svc := newMatchFixture()
	ctx := context.Background()
	t1, _ := teams.Create(ctx, model.Team{Name: "India"})
	t2, _ := teams.Create(ctx, model.Team{Name: "Australia"})
	created, _ := matches.Create(ctx, model.Match{Team1ID: t1.ID, Team2ID: t2.ID, TossWinnerID: t1.ID, TossChoice: "Bat", Overs: 20, Date: "2026-08-30"})

	if _, err := svc.GetMatch(ctx, 0); !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input for id 0, got %v", err)
	}
	if _, err := svc.GetMatch(ctx, created.ID+10); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	out, err := svc.GetMatch(ctx, created.ID)
	if err != nil || out.ID != created.ID {
		t.Fatalf("unexpected result: %v %+v", err, out)
	}
}
