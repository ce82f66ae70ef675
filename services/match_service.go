package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/LinQu/SOGSCup/brackets"
	"github.com/LinQu/SOGSCup/models"
	"github.com/LinQu/SOGSCup/repositories"
)

type ScheduleInput struct {
	Group string `json:"group"`
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

type ResultInput struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
}

type MatchService interface {
	CreateSchedule(ctx context.Context, input ScheduleInput) (*models.Match, error)
	UpdateSchedule(ctx context.Context, id int, input ScheduleInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, filter repositories.MatchFilter) ([]*models.Match, error)

	// SubmitResult records a final score for a group pairing, creating the
	// match if it was never scheduled. This is the admin score-entry form.
	SubmitResult(ctx context.Context, group string, input ResultInput) (*models.Match, error)

	// Live flow: start, update the running score, finish. Every transition is
	// broadcast to the match's scoreboard room.
	StartMatch(ctx context.Context, id int) (*models.Match, error)
	UpdateLiveScore(ctx context.Context, id int, score1, score2 int) (*models.Match, error)
	FinishMatch(ctx context.Context, id int) (*models.Match, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
	teamRepo  repositories.TeamRepository
	hub       *brackets.Hub
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	hub *brackets.Hub,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		hub:       hub,
	}
}

func (s *matchService) CreateSchedule(ctx context.Context, input ScheduleInput) (*models.Match, error) {
	match, err := s.validateSchedule(ctx, input)
	if err != nil {
		return nil, err
	}
	match.Status = models.StatusScheduled

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (s *matchService) UpdateSchedule(ctx context.Context, id int, input ScheduleInput) (*models.Match, error) {
	existing, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	if existing.Status == models.StatusCompleted {
		// Finished results are corrected through SubmitResult, not by moving
		// the fixture around.
		return nil, fmt.Errorf("%w: match %d is completed", ErrMatchNotEditable, id)
	}

	match, err := s.validateSchedule(ctx, input)
	if err != nil {
		return nil, err
	}
	match.ID = id
	match.Status = existing.Status
	match.Score1 = existing.Score1
	match.Score2 = existing.Score2

	if err := s.matchRepo.UpdateSchedule(ctx, match); err != nil {
		return nil, mapMatchRepoError(err)
	}
	return s.matchRepo.GetByID(ctx, id)
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return mapMatchRepoError(err)
	}
	return nil
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, filter repositories.MatchFilter) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) SubmitResult(ctx context.Context, group string, input ResultInput) (*models.Match, error) {
	if err := validateScore(input.Score1); err != nil {
		return nil, err
	}
	if err := validateScore(input.Score2); err != nil {
		return nil, err
	}
	if err := s.checkPairing(ctx, group, input.Team1, input.Team2); err != nil {
		return nil, err
	}

	existing, err := s.matchRepo.GetByGroupAndPair(ctx, group, input.Team1, input.Team2)
	if err != nil && !errors.Is(err, repositories.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to look up pairing: %w", err)
	}

	if existing != nil {
		if err := s.matchRepo.UpdateScore(ctx, existing.ID, input.Score1, input.Score2, models.StatusCompleted); err != nil {
			return nil, mapMatchRepoError(err)
		}
		return s.matchRepo.GetByID(ctx, existing.ID)
	}

	score1, score2 := input.Score1, input.Score2
	match := &models.Match{
		Group:  group,
		Team1:  input.Team1,
		Team2:  input.Team2,
		Score1: &score1,
		Score2: &score2,
		Status: models.StatusCompleted,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}
	return match, nil
}

func (s *matchService) StartMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	if match.Status != models.StatusScheduled {
		return nil, fmt.Errorf("%w: match %d is %s", ErrMatchNotEditable, id, match.Status)
	}

	if err := s.matchRepo.UpdateStatus(ctx, id, models.StatusInProgress); err != nil {
		return nil, mapMatchRepoError(err)
	}
	match, err = s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}

	s.broadcast(brackets.EventMatchStarted, match)
	return match, nil
}

func (s *matchService) UpdateLiveScore(ctx context.Context, id int, score1, score2 int) (*models.Match, error) {
	if err := validateScore(score1); err != nil {
		return nil, err
	}
	if err := validateScore(score2); err != nil {
		return nil, err
	}

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	if match.Status != models.StatusInProgress {
		return nil, fmt.Errorf("%w: match %d is %s", ErrMatchNotEditable, id, match.Status)
	}

	if err := s.matchRepo.UpdateScore(ctx, id, score1, score2, models.StatusInProgress); err != nil {
		return nil, mapMatchRepoError(err)
	}
	match, err = s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}

	s.broadcast(brackets.EventScoreUpdated, match)
	return match, nil
}

func (s *matchService) FinishMatch(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}
	if match.Status != models.StatusInProgress {
		return nil, fmt.Errorf("%w: match %d is %s", ErrMatchNotEditable, id, match.Status)
	}
	// Invariant: a completed match carries both scores.
	if match.Score1 == nil || match.Score2 == nil {
		return nil, ErrResultMissing
	}

	if err := s.matchRepo.UpdateStatus(ctx, id, models.StatusCompleted); err != nil {
		return nil, mapMatchRepoError(err)
	}
	match, err = s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMatchRepoError(err)
	}

	s.broadcast(brackets.EventMatchFinished, match)
	return match, nil
}

func (s *matchService) broadcast(eventType string, match *models.Match) {
	if s.hub == nil {
		return
	}
	room := brackets.MatchRoom(match.ID)
	s.hub.BroadcastToRoom(room, brackets.WebSocketMessage{
		Type:    eventType,
		Payload: match,
		RoomID:  room,
	})
}

func (s *matchService) validateSchedule(ctx context.Context, input ScheduleInput) (*models.Match, error) {
	group := strings.ToUpper(strings.TrimSpace(input.Group))
	team1 := strings.TrimSpace(input.Team1)
	team2 := strings.TrimSpace(input.Team2)

	if group == "" || team1 == "" || team2 == "" {
		return nil, fmt.Errorf("%w: group and both teams are required", ErrValidationFailed)
	}
	if err := s.checkPairing(ctx, group, team1, team2); err != nil {
		return nil, err
	}

	return &models.Match{Group: group, Team1: team1, Team2: team2}, nil
}

func (s *matchService) checkPairing(ctx context.Context, group, team1, team2 string) error {
	if team1 == team2 {
		return ErrTeamsIdentical
	}

	roster, err := s.teamRepo.ListNamesByGroup(ctx, group)
	if err != nil {
		return fmt.Errorf("failed to load roster of group %s: %w", group, err)
	}
	for _, team := range []string{team1, team2} {
		if !slices.Contains(roster, team) {
			return fmt.Errorf("%w: %q is not in group %s", ErrTeamNotInGroup, team, group)
		}
	}
	return nil
}

func validateScore(score int) error {
	if score < 0 || score > models.MaxGameScore {
		return fmt.Errorf("%w: got %d, maximum is %d", ErrScoreOutOfRange, score, models.MaxGameScore)
	}
	return nil
}

func mapMatchRepoError(err error) error {
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrNotFound
	}
	return err
}
