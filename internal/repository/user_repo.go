package repository

import (
	"context"
	"database/sql"
	"errors"

	"team-membership-service/internal/domain"
)

// UserRepository реализует взаимодействие со справочником пользователей
// в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, first_name, last_name, permission, created_at, updated_at"

// Create создает пользователя.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, permission)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `
	`

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Permission,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, domain.NewPersistenceError("create user", err)
	}

	return created, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewPersistenceError("get user", err)
	}

	return user, nil
}

// ExistsByEmail проверяет, зарегистрирован ли email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE email = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, domain.NewPersistenceError("check email existence", err)
	}

	return count > 0, nil
}

// GetPending возвращает пользователей с необработанной заявкой.
func (r *UserRepository) GetPending(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE permission = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.PermissionPending)
	if err != nil {
		return nil, domain.NewPersistenceError("get pending users", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan user row", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate user rows", err)
	}

	return users, nil
}

// UpdatePermissionStatus обновляет статус заявки пользователя.
func (r *UserRepository) UpdatePermissionStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	query := `
		UPDATE users
		SET permission = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, userID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewPersistenceError("update user permission", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Permission,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
