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

type rosterKey struct{ teamID, playerID int64 }

type fakeTeamRepo struct {
	nextID  int64
	items   map[int64]model.Team
	roster  map[rosterKey]bool
	members map[int64][]int64
	players *fakePlayerRepo
}

func newFakeTeamRepo(players *fakePlayerRepo) *fakeTeamRepo {
	return &fakeTeamRepo{
		nextID:  1,
		items:   map[int64]model.Team{},
		roster:  map[rosterKey]bool{},
		members: map[int64][]int64{},
		players: players,
	}
}

func (f *fakeTeamRepo) Create(_ context.Context, tm model.Team) (model.Team, error) {
	tm.ID = f.nextID
	f.nextID++
	f.items[tm.ID] = tm
	return tm, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int64) (model.Team, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeTeamRepo) List(_ context.Context, _ repository.Page) (repository.PageResult[model.Team], error) {
	res := repository.PageResult[model.Team]{}
	for _, v := range f.items {
		res.Items = append(res.Items, v)
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, id int64, name string) (model.Team, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	it.Name = name
	f.items[id] = it
	return it, nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTeamRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeTeamRepo) AddPlayer(_ context.Context, teamID, playerID int64) error {
	k := rosterKey{teamID, playerID}
	if f.roster[k] {
		return repository.ErrAlreadyExists
	}
	f.roster[k] = true
	f.members[teamID] = append(f.members[teamID], playerID)
	return nil
}

func (f *fakeTeamRepo) Players(_ context.Context, teamID int64) ([]model.Player, error) {
	var out []model.Player
	for _, pid := range f.members[teamID] {
		if p, ok := f.players.items[pid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.TeamRepository = (*fakeTeamRepo)(nil)

func newTeamFixture() (*fakeTeamRepo, *fakePlayerRepo, service.TeamService) {
	players := newFakePlayerRepo()
	teams := newFakeTeamRepo(players)
	svc := service.NewTeamService(teams, players, zerolog.New(io.Discard))
	return teams, players, svc
}

func TestTeamService_CreateTeam_Validation(t *testing.T) {
	_, _, svc := newTeamFixture()

	if _, err := svc.CreateTeam(context.Background(), "  "); !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
	out, err := svc.CreateTeam(context.Background(), "India")
	if err != nil || out.ID == 0 {
		t.Fatalf("create failed: %v %+v", err, out)
	}
}

func TestTeamService_AddPlayerToTeam(t *testing.T) {
	teams, players, svc := newTeamFixture()
	ctx := context.Background()

	team, _ := teams.Create(ctx, model.Team{Name: "India"})
	player, _ := players.Create(ctx, model.Player{Name: "Rohit"})

	if err := svc.AddPlayerToTeam(ctx, team.ID, 999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
	if err := svc.AddPlayerToTeam(ctx, 999, player.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
	if err := svc.AddPlayerToTeam(ctx, team.ID, player.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.AddPlayerToTeam(ctx, team.ID, player.ID); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on duplicate assignment, got %v", err)
	}

	roster, err := svc.ListTeamPlayers(ctx, team.ID)
	if err != nil || len(roster) != 1 || roster[0].Name != "Rohit" {
		t.Fatalf("unexpected roster: %v %+v", err, roster)
	}
}

func TestTeamService_ListTeamPlayers_UnknownTeam(t *testing.T) {
	_, _, svc := newTeamFixture()
	if _, err := svc.ListTeamPlayers(context.Background(), 5); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_UpdateDelete(t *testing.T) {
	teams, _, svc := newTeamFixture()
	ctx := context.Background()

	if _, err := svc.UpdateTeam(ctx, 3, "X"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	team, _ := teams.Create(ctx, model.Team{Name: "Australia"})
	out, err := svc.UpdateTeam(ctx, team.ID, "Australia XI")
	if err != nil || out.Name != "Australia XI" {
		t.Fatalf("rename failed: %v %+v", err, out)
	}
	if err := svc.DeleteTeam(ctx, team.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteTeam(ctx, team.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
