package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LinQu/SOGSCup/models"
	"github.com/LinQu/SOGSCup/repositories"
	"github.com/LinQu/SOGSCup/standings"
)

// GroupStandings bundles one group's table with its readiness verdict, the
// shape the dashboard renders per group tab.
type GroupStandings struct {
	Group     string                `json:"group"`
	Table     []models.StandingsRow `json:"table"`
	Readiness standings.Readiness   `json:"readiness"`
}

type StandingsService interface {
	ComputeStandings(ctx context.Context, group string) ([]models.StandingsRow, error)
	GroupReadiness(ctx context.Context, group string) (standings.Readiness, error)
	AllGroupStandings(ctx context.Context) ([]GroupStandings, error)
}

type standingsService struct {
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
}

func NewStandingsService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
	}
}

// ComputeStandings recomputes the group table from scratch on every call.
// The groups are small, and recomputation keeps the table trivially
// consistent with the store.
func (s *standingsService) ComputeStandings(ctx context.Context, group string) ([]models.StandingsRow, error) {
	teams, err := s.teamRepo.ListNamesByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of group %s: %w", group, err)
	}
	if len(teams) == 0 {
		// A group nobody registered for is empty, not an error.
		return []models.StandingsRow{}, nil
	}

	matches, err := s.matchRepo.ListCompletedByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed matches of group %s: %w", group, err)
	}

	table, err := standings.Calculate(teams, matches)
	if err != nil {
		if errors.Is(err, standings.ErrUnknownTeam) {
			return nil, fmt.Errorf("%w: %v", ErrStandingsIntegrity, err)
		}
		return nil, err
	}
	return table, nil
}

func (s *standingsService) GroupReadiness(ctx context.Context, group string) (standings.Readiness, error) {
	table, err := s.ComputeStandings(ctx, group)
	if err != nil {
		return standings.Readiness{}, err
	}
	return standings.CheckReadiness(table), nil
}

// AllGroupStandings computes every group's table concurrently. Each group is
// independent, so the fan-out is safe.
func (s *standingsService) AllGroupStandings(ctx context.Context) ([]GroupStandings, error) {
	groups, err := s.teamRepo.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	results := make([]GroupStandings, len(groups))
	g, gCtx := errgroup.WithContext(ctx)
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			table, err := s.ComputeStandings(gCtx, group)
			if err != nil {
				return err
			}
			results[i] = GroupStandings{
				Group:     group,
				Table:     table,
				Readiness: standings.CheckReadiness(table),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
