package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"team-membership-service/internal/domain"
)

// AssignmentRepository реализует взаимодействие с интервалами членства
// в PostgreSQL. Единственный пишущий путь к таблице user_team_assignments.
type AssignmentRepository struct {
	db    *sql.DB
	clock domain.Clock
	ids   domain.IDGenerator
}

// NewAssignmentRepository создает новый экземпляр AssignmentRepository.
func NewAssignmentRepository(db *sql.DB, clock domain.Clock, ids domain.IDGenerator) domain.AssignmentRepository {
	return &AssignmentRepository{
		db:    db,
		clock: clock,
		ids:   ids,
	}
}

const assignmentColumns = "id, user_id, team_id, effective_from, effective_to, created_at"

// ChangeTeam атомарно переводит пользователя в новую команду.
// Открытые строки пользователя блокируются (SELECT ... FOR UPDATE) на время
// транзакции, поэтому конкурентные переводы одного пользователя
// сериализуются и инвариант "не более одного открытого интервала"
// сохраняется. Переводы разных пользователей друг друга не блокируют.
func (r *AssignmentRepository) ChangeTeam(ctx context.Context, userID string, teamID int) (*domain.TeamTransition, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.NewPersistenceError("begin change team transaction", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Читаем и блокируем открытые интервалы пользователя
	open, err := r.lockOpenForUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if len(open) > 1 {
		err = domain.ErrConsistencyViolation
		return nil, err
	}

	// 2. Пользователь уже в целевой команде — ничего не пишем
	if len(open) == 1 && open[0].TeamID == teamID {
		if err = tx.Commit(); err != nil {
			return nil, domain.NewPersistenceError("commit change team transaction", err)
		}
		return &domain.TeamTransition{Current: open[0], Changed: false}, nil
	}

	now := r.clock.Now()

	// 3. Закрываем текущий интервал, если он есть
	var previous *domain.TeamAssignment
	if len(open) == 1 {
		previous = open[0]
		// Закрытый интервал обязан иметь ненулевую длительность
		if !now.After(previous.EffectiveFrom) {
			now = previous.EffectiveFrom.Add(time.Microsecond)
		}
		if err = r.closeOpenForUser(ctx, tx, userID, now); err != nil {
			return nil, err
		}
		closedAt := now
		previous.EffectiveTo = &closedAt
	}

	// 4. Открываем новый интервал
	current := &domain.TeamAssignment{
		ID:            r.ids.NewID(),
		UserID:        userID,
		TeamID:        teamID,
		EffectiveFrom: now,
	}

	insertQuery := `
		INSERT INTO user_team_assignments (id, user_id, team_id, effective_from, effective_to)
		VALUES ($1, $2, $3, $4, NULL)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, insertQuery,
		current.ID, current.UserID, current.TeamID, current.EffectiveFrom,
	).Scan(&current.CreatedAt)
	if err != nil {
		return nil, domain.NewPersistenceError("insert new assignment", err)
	}

	// 5. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return nil, domain.NewPersistenceError("commit change team transaction", err)
	}

	return &domain.TeamTransition{
		Previous: previous,
		Current:  current,
		Changed:  true,
	}, nil
}

// lockOpenForUser возвращает открытые интервалы пользователя, удерживая
// блокировку строк до конца транзакции.
func (r *AssignmentRepository) lockOpenForUser(ctx context.Context, tx *sql.Tx, userID string) ([]*domain.TeamAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM user_team_assignments
		WHERE user_id = $1 AND effective_to IS NULL
		FOR UPDATE
	`

	rows, err := tx.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("lock open assignments", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// closeOpenForUser выставляет effective_to на всех открытых интервалах
// пользователя.
func (r *AssignmentRepository) closeOpenForUser(ctx context.Context, tx *sql.Tx, userID string, at time.Time) error {
	query := `
		UPDATE user_team_assignments
		SET effective_to = $1
		WHERE user_id = $2 AND effective_to IS NULL
	`

	if _, err := tx.ExecContext(ctx, query, at, userID); err != nil {
		return domain.NewPersistenceError("close open assignments", err)
	}
	return nil
}

// GetCurrent возвращает открытый интервал пользователя или nil.
func (r *AssignmentRepository) GetCurrent(ctx context.Context, userID string) (*domain.TeamAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM user_team_assignments
		WHERE user_id = $1 AND effective_to IS NULL
		LIMIT 1
	`

	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewPersistenceError("get current assignment", err)
	}

	return assignment, nil
}

// GetHistory возвращает всю историю членства пользователя,
// от самого раннего интервала к позднему.
func (r *AssignmentRepository) GetHistory(ctx context.Context, userID string) ([]*domain.TeamAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM user_team_assignments
		WHERE user_id = $1
		ORDER BY effective_from ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("get assignment history", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetOpenForTeam возвращает текущий состав команды: все открытые интервалы
// с указанным team_id.
func (r *AssignmentRepository) GetOpenForTeam(ctx context.Context, teamID int) ([]*domain.TeamAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM user_team_assignments
		WHERE team_id = $1 AND effective_to IS NULL
		ORDER BY effective_from ASC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, domain.NewPersistenceError("get open assignments for team", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Find возвращает назначения по явному набору условий фильтра.
func (r *AssignmentRepository) Find(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.TeamAssignment, error) {
	var (
		conds []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conds = append(conds, "user_id = "+arg(*filter.UserID))
	}
	if filter.TeamID != nil {
		conds = append(conds, "team_id = "+arg(*filter.TeamID))
	}
	if filter.From != nil {
		conds = append(conds, "effective_from >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "effective_from <= "+arg(*filter.To))
	}

	query := "SELECT " + assignmentColumns + " FROM user_team_assignments"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY effective_from ASC"

	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewPersistenceError("find assignments", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(row rowScanner) (*domain.TeamAssignment, error) {
	var (
		assignment  domain.TeamAssignment
		effectiveTo sql.NullTime
	)

	err := row.Scan(
		&assignment.ID,
		&assignment.UserID,
		&assignment.TeamID,
		&assignment.EffectiveFrom,
		&effectiveTo,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if effectiveTo.Valid {
		assignment.EffectiveTo = &effectiveTo.Time
	}

	return &assignment, nil
}

func scanAssignments(rows *sql.Rows) ([]*domain.TeamAssignment, error) {
	assignments := make([]*domain.TeamAssignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan assignment row", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate assignment rows", err)
	}

	return assignments, nil
}
