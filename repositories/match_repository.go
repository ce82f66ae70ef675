package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/LinQu/SOGSCup/models"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchFilter narrows List results. Nil fields match everything.
type MatchFilter struct {
	Group  *string
	Status *models.MatchStatus
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	GetByGroupAndPair(ctx context.Context, group, team1, team2 string) (*models.Match, error)
	List(ctx context.Context, filter MatchFilter) ([]*models.Match, error)
	ListCompletedByGroup(ctx context.Context, group string) ([]*models.Match, error)
	UpdateSchedule(ctx context.Context, match *models.Match) error
	UpdateScore(ctx context.Context, id int, score1, score2 int, status models.MatchStatus) error
	UpdateStatus(ctx context.Context, id int, status models.MatchStatus) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (grup, team1, team2, score1, score2, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, updated_at`

	return r.db.QueryRowContext(ctx, query,
		match.Group,
		match.Team1,
		match.Team2,
		match.Score1,
		match.Score2,
		match.Status,
	).Scan(&match.ID, &match.UpdatedAt)
}

func (r *postgresMatchRepository) scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID,
		&match.Group,
		&match.Team1,
		&match.Team2,
		&match.Score1,
		&match.Score2,
		&match.Status,
		&match.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, grup, team1, team2, score1, score2, status, updated_at
		FROM matches
		WHERE id = $1`

	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

// GetByGroupAndPair looks a pairing up with team order as stored; the score
// entry form addresses pairings in roster order, matching how they were
// created.
func (r *postgresMatchRepository) GetByGroupAndPair(ctx context.Context, group, team1, team2 string) (*models.Match, error) {
	query := `
		SELECT id, grup, team1, team2, score1, score2, status, updated_at
		FROM matches
		WHERE grup = $1 AND team1 = $2 AND team2 = $3`

	return r.scanMatch(r.db.QueryRowContext(ctx, query, group, team1, team2))
}

func (r *postgresMatchRepository) List(ctx context.Context, filter MatchFilter) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, grup, team1, team2, score1, score2, status, updated_at
		FROM matches
		WHERE 1=1`)

	args := make([]interface{}, 0, 2)
	placeholderIndex := 1

	if filter.Group != nil {
		queryBuilder.WriteString(" AND grup = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Group)
		placeholderIndex++
	}

	if filter.Status != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Status)
		placeholderIndex++
	}

	queryBuilder.WriteString(" ORDER BY updated_at DESC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMatches(rows)
}

func (r *postgresMatchRepository) ListCompletedByGroup(ctx context.Context, group string) ([]*models.Match, error) {
	query := `
		SELECT id, grup, team1, team2, score1, score2, status, updated_at
		FROM matches
		WHERE grup = $1 AND status = $2
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, group, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMatches(rows)
}

func (r *postgresMatchRepository) collectMatches(rows *sql.Rows) ([]*models.Match, error) {
	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateSchedule(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET grup = $1, team1 = $2, team2 = $3, status = $4, updated_at = NOW()
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		match.Group,
		match.Team1,
		match.Team2,
		match.Status,
		match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id int, score1, score2 int, status models.MatchStatus) error {
	query := `
		UPDATE matches
		SET score1 = $1, score2 = $2, status = $3, updated_at = NOW()
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, score1, score2, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateStatus(ctx context.Context, id int, status models.MatchStatus) error {
	query := `
		UPDATE matches
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		exec = r.db
	}
	_, err := exec.ExecContext(ctx, `DELETE FROM matches`)
	return err
}
