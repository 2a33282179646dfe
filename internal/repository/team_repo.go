package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-membership-service/internal/domain"
)

// TeamRepository реализует взаимодействие с каталогом команд в PostgreSQL.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &TeamRepository{db: db}
}

const teamColumns = "id, name, description, created_at, updated_at"

// Create создает команду в каталоге.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	query := `
		INSERT INTO teams (name, description)
		VALUES ($1, $2)
		RETURNING ` + teamColumns + `
	`

	created, err := scanTeam(r.db.QueryRowContext(ctx, query, team.Name, team.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTeamAlreadyExists
		}
		return nil, domain.NewPersistenceError("create team", err)
	}

	return created, nil
}

// GetByID возвращает команду по идентификатору.
func (r *TeamRepository) GetByID(ctx context.Context, teamID int) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, domain.NewPersistenceError("get team", err)
	}

	return team, nil
}

// GetAll возвращает все команды каталога.
func (r *TeamRepository) GetAll(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewPersistenceError("get all teams", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan team row", err)
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate team rows", err)
	}

	return teams, nil
}

// Exists проверяет существование команды.
func (r *TeamRepository) Exists(ctx context.Context, teamID int) (bool, error) {
	query := `SELECT COUNT(*) FROM teams WHERE id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, teamID).Scan(&count); err != nil {
		return false, domain.NewPersistenceError("check team existence", err)
	}

	return count > 0, nil
}

// Delete удаляет команду из каталога.
func (r *TeamRepository) Delete(ctx context.Context, teamID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return domain.NewPersistenceError("delete team", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewPersistenceError("delete team", err)
	}
	if affected == 0 {
		return domain.ErrTeamNotFound
	}

	return nil
}

// GetTeamsWithEffectiveUsers возвращает все команды вместе с одобренными
// пользователями, чье назначение сейчас открыто.
func (r *TeamRepository) GetTeamsWithEffectiveUsers(ctx context.Context) ([]*domain.TeamWithUsers, error) {
	teams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.TeamWithUsers, 0, len(teams))
	byID := make(map[int]*domain.TeamWithUsers, len(teams))
	for _, team := range teams {
		entry := &domain.TeamWithUsers{Team: team, Users: make([]*domain.User, 0)}
		result = append(result, entry)
		byID[team.ID] = entry
	}

	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.permission, u.created_at, u.updated_at, a.team_id
		FROM users u
		JOIN user_team_assignments a ON u.id = a.user_id
		WHERE a.effective_to IS NULL AND u.permission = $1
		ORDER BY u.first_name, u.last_name
	`

	rows, err := r.db.QueryContext(ctx, query, domain.PermissionApproved)
	if err != nil {
		return nil, domain.NewPersistenceError("get teams with effective users", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			user   domain.User
			teamID int
		)
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.Permission,
			&user.CreatedAt,
			&user.UpdatedAt,
			&teamID,
		)
		if err != nil {
			return nil, domain.NewPersistenceError("scan effective user row", err)
		}

		if entry, ok := byID[teamID]; ok {
			entry.Users = append(entry.Users, &user)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate effective user rows", err)
	}

	return result, nil
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	var (
		team        domain.Team
		description sql.NullString
	)

	err := row.Scan(&team.ID, &team.Name, &description, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, err
	}

	team.Description = description.String
	return &team, nil
}
