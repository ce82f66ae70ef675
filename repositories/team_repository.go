package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/LinQu/SOGSCup/models"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamNameTaken = errors.New("team name is already registered")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	ListNamesByGroup(ctx context.Context, group string) ([]string, error)
	ListGroups(ctx context.Context) ([]string, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (grup, nama_tim)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, team.Group, team.Name).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrTeamNameTaken
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	query := `
		SELECT id, grup, nama_tim, created_at
		FROM teams
		WHERE nama_tim = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&team.ID, &team.Group, &team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, grup, nama_tim, created_at
		FROM teams
		ORDER BY grup ASC, nama_tim ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		team := &models.Team{}
		if err := rows.Scan(&team.ID, &team.Group, &team.Name, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) ListNamesByGroup(ctx context.Context, group string) ([]string, error) {
	query := `
		SELECT nama_tim
		FROM teams
		WHERE grup = $1
		ORDER BY nama_tim ASC`

	rows, err := r.db.QueryContext(ctx, query, group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *postgresTeamRepository) ListGroups(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT grup
		FROM teams
		WHERE grup IS NOT NULL
		ORDER BY grup ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

func (r *postgresTeamRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if exec == nil {
		exec = r.db
	}
	_, err := exec.ExecContext(ctx, `DELETE FROM teams`)
	return err
}
