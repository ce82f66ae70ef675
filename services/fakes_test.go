package services

import (
	"context"
	"sort"

	"github.com/LinQu/SOGSCup/models"
	"github.com/LinQu/SOGSCup/repositories"
	"github.com/LinQu/SOGSCup/standings"
)

// In-memory repository fakes shared by the service tests.

type fakeTeamRepo struct {
	teams  []*models.Team
	nextID int
}

func newFakeTeamRepo(teams ...*models.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{}
	for _, t := range teams {
		_ = repo.Create(context.Background(), t)
	}
	return repo
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return repositories.ErrTeamNameTaken
		}
	}
	r.nextID++
	team.ID = r.nextID
	copied := *team
	r.teams = append(r.teams, &copied)
	return nil
}

func (r *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	for _, t := range r.teams {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	out := make([]*models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeTeamRepo) ListNamesByGroup(_ context.Context, group string) ([]string, error) {
	names := make([]string, 0)
	for _, t := range r.teams {
		if t.Group == group {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *fakeTeamRepo) ListGroups(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	groups := make([]string, 0)
	for _, t := range r.teams {
		if !seen[t.Group] {
			seen[t.Group] = true
			groups = append(groups, t.Group)
		}
	}
	sort.Strings(groups)
	return groups, nil
}

func (r *fakeTeamRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.teams = nil
	return nil
}

type fakeMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]*models.Match)}
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	r.nextID++
	match.ID = r.nextID
	copied := *match
	r.matches[match.ID] = &copied
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

func (r *fakeMatchRepo) GetByGroupAndPair(_ context.Context, group, team1, team2 string) (*models.Match, error) {
	for _, m := range r.matches {
		if m.Group == group && m.Team1 == team1 && m.Team2 == team2 {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) List(_ context.Context, filter repositories.MatchFilter) ([]*models.Match, error) {
	out := make([]*models.Match, 0)
	for _, m := range r.matches {
		if filter.Group != nil && m.Group != *filter.Group {
			continue
		}
		if filter.Status != nil && m.Status != *filter.Status {
			continue
		}
		copied := *m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) ListCompletedByGroup(ctx context.Context, group string) ([]*models.Match, error) {
	status := models.StatusCompleted
	return r.List(ctx, repositories.MatchFilter{Group: &group, Status: &status})
}

func (r *fakeMatchRepo) UpdateSchedule(_ context.Context, match *models.Match) error {
	existing, ok := r.matches[match.ID]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	existing.Group = match.Group
	existing.Team1 = match.Team1
	existing.Team2 = match.Team2
	existing.Status = match.Status
	return nil
}

func (r *fakeMatchRepo) UpdateScore(_ context.Context, id int, score1, score2 int, status models.MatchStatus) error {
	existing, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	s1, s2 := score1, score2
	existing.Score1 = &s1
	existing.Score2 = &s2
	existing.Status = status
	return nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, id int, status models.MatchStatus) error {
	existing, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	existing.Status = status
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeMatchRepo) DeleteAll(_ context.Context, _ repositories.SQLExecutor) error {
	r.matches = make(map[int]*models.Match)
	return nil
}

// fakeStandingsService feeds the bracket service canned group tables.
type fakeStandingsService struct {
	groups []GroupStandings
	err    error
}

func (s *fakeStandingsService) ComputeStandings(_ context.Context, group string) ([]models.StandingsRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, g := range s.groups {
		if g.Group == group {
			return g.Table, nil
		}
	}
	return []models.StandingsRow{}, nil
}

func (s *fakeStandingsService) GroupReadiness(ctx context.Context, group string) (standings.Readiness, error) {
	if s.err != nil {
		return standings.Readiness{}, s.err
	}
	for _, g := range s.groups {
		if g.Group == group {
			return g.Readiness, nil
		}
	}
	return standings.Readiness{}, nil
}

func (s *fakeStandingsService) AllGroupStandings(_ context.Context) ([]GroupStandings, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.groups, nil
}

// readyGroup builds a finished four-team group whose table ranks winner and
// runnerUp first.
func readyGroup(label, winner, runnerUp string) GroupStandings {
	table := []models.StandingsRow{
		{Team: winner, GamesPlayed: 3, Wins: 3, Points: 9},
		{Team: runnerUp, GamesPlayed: 3, Wins: 2, Points: 6},
		{Team: label + "-third", GamesPlayed: 3, Wins: 1, Points: 3},
		{Team: label + "-fourth", GamesPlayed: 3, Wins: 0, Points: 0},
	}
	return GroupStandings{
		Group:     label,
		Table:     table,
		Readiness: standings.Readiness{Ready: true},
	}
}
