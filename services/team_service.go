package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/LinQu/SOGSCup/models"
	"github.com/LinQu/SOGSCup/repositories"
)

// registrationGroups are the group labels of the cup format. The seeding
// template assumes exactly these four.
var registrationGroups = []string{"A", "B", "C", "D"}

type RegisterTeamInput struct {
	Group string `json:"group"`
	Name  string `json:"name"`
}

type TeamService interface {
	Register(ctx context.Context, input RegisterTeamInput) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	ListGroups(ctx context.Context) ([]string, error)
	// ResetAll deletes every team and every match in one transaction, the
	// bulk reset behind the "delete all teams" admin action.
	ResetAll(ctx context.Context) error
}

type teamService struct {
	db        *sql.DB
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
}

func NewTeamService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) TeamService {
	return &teamService{
		db:        db,
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
	}
}

func (s *teamService) Register(ctx context.Context, input RegisterTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	group := strings.ToUpper(strings.TrimSpace(input.Group))
	if !validRegistrationGroup(group) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, input.Group)
	}

	team := &models.Team{Group: group, Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameTaken) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to register team: %w", err)
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]*models.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) ListGroups(ctx context.Context) ([]string, error) {
	return s.teamRepo.ListGroups(ctx)
}

func (s *teamService) ResetAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback()

	// Matches first: they reference team names.
	if err := s.matchRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	if err := s.teamRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete teams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}
	return nil
}

func validRegistrationGroup(group string) bool {
	for _, g := range registrationGroups {
		if g == group {
			return true
		}
	}
	return false
}
