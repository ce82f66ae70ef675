package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/LinQu/SOGSCup/brackets"
	"github.com/LinQu/SOGSCup/models"
)

// TournamentReadiness is the per-group gate report plus the overall verdict.
// The bracket can only be seeded when every group is individually ready.
type TournamentReadiness struct {
	Ready  bool                   `json:"ready"`
	Groups []GroupReadinessStatus `json:"groups"`
}

type GroupReadinessStatus struct {
	Group  string `json:"group"`
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

type BracketService interface {
	CurrentDraw() (*models.BracketDraw, error)
	GenerateDraw(ctx context.Context) (*models.BracketDraw, error)
	ShuffleDraw(ctx context.Context) (*models.BracketDraw, error)
	Readiness(ctx context.Context) (*TournamentReadiness, error)
	Finalists(ctx context.Context) ([]models.GroupQualifiers, error)
}

// bracketService owns the session-scoped current draw. The seeder itself is
// stateless; this service is the caller that stores the draw and replaces it
// wholesale on reshuffle, so repeated reads stay stable.
type bracketService struct {
	standingsService StandingsService

	mu   sync.Mutex
	draw *models.BracketDraw
	rng  *rand.Rand
}

func NewBracketService(standingsService StandingsService) BracketService {
	return &bracketService{
		standingsService: standingsService,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *bracketService) CurrentDraw() (*models.BracketDraw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draw == nil {
		return nil, ErrNoDrawGenerated
	}
	draw := *s.draw
	return &draw, nil
}

// GenerateDraw produces the deterministic default draw. An already generated
// draw is returned as is; only an explicit shuffle replaces it.
func (s *bracketService) GenerateDraw(ctx context.Context) (*models.BracketDraw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draw != nil {
		draw := *s.draw
		return &draw, nil
	}

	qualifiers, err := s.gatedQualifiers(ctx)
	if err != nil {
		return nil, err
	}
	draw, err := brackets.Seed(qualifiers)
	if err != nil {
		return nil, err
	}
	s.draw = draw

	result := *draw
	return &result, nil
}

func (s *bracketService) ShuffleDraw(ctx context.Context) (*models.BracketDraw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qualifiers, err := s.gatedQualifiers(ctx)
	if err != nil {
		return nil, err
	}
	draw, err := brackets.Shuffle(qualifiers, s.rng)
	if err != nil {
		return nil, err
	}
	s.draw = draw

	result := *draw
	return &result, nil
}

func (s *bracketService) Readiness(ctx context.Context) (*TournamentReadiness, error) {
	groups, err := s.standingsService.AllGroupStandings(ctx)
	if err != nil {
		return nil, err
	}

	report := &TournamentReadiness{Ready: len(groups) > 0}
	for _, g := range groups {
		report.Groups = append(report.Groups, GroupReadinessStatus{
			Group:  g.Group,
			Ready:  g.Readiness.Ready,
			Reason: g.Readiness.Reason,
		})
		if !g.Readiness.Ready {
			report.Ready = false
		}
	}
	return report, nil
}

// Finalists reports each group's current top two without the readiness gate:
// the dashboard shows provisional qualifiers while groups are still playing.
// Groups with fewer than two ranked teams are skipped.
func (s *bracketService) Finalists(ctx context.Context) ([]models.GroupQualifiers, error) {
	groups, err := s.standingsService.AllGroupStandings(ctx)
	if err != nil {
		return nil, err
	}

	finalists := make([]models.GroupQualifiers, 0, len(groups))
	for _, g := range groups {
		if len(g.Table) < 2 {
			continue
		}
		finalists = append(finalists, models.GroupQualifiers{
			Group:    g.Group,
			Winner:   g.Table[0].Team,
			RunnerUp: g.Table[1].Team,
		})
	}
	return finalists, nil
}

// gatedQualifiers collects every group's top two, refusing with the full list
// of per-group reasons while any group is short of the readiness thresholds.
// A partial bracket is never produced.
func (s *bracketService) gatedQualifiers(ctx context.Context) (map[string]models.GroupQualifiers, error) {
	groups, err := s.standingsService.AllGroupStandings(ctx)
	if err != nil {
		return nil, err
	}

	var notReady []string
	qualifiers := make(map[string]models.GroupQualifiers, len(groups))
	for _, g := range groups {
		if !g.Readiness.Ready {
			notReady = append(notReady, fmt.Sprintf("group %s: %s", g.Group, g.Readiness.Reason))
			continue
		}
		qualifiers[g.Group] = models.GroupQualifiers{
			Group:    g.Group,
			Winner:   g.Table[0].Team,
			RunnerUp: g.Table[1].Team,
		}
	}

	if len(notReady) > 0 {
		sort.Strings(notReady)
		return nil, fmt.Errorf("%w: %s", ErrGroupsNotReady, strings.Join(notReady, "; "))
	}
	if len(qualifiers) == 0 {
		return nil, fmt.Errorf("%w: no groups have been registered", ErrGroupsNotReady)
	}
	return qualifiers, nil
}
