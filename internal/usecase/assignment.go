package usecase

import (
	"context"
	"fmt"

	"team-membership-service/internal/domain"
)

// AssignmentUseCase реализует бизнес-логику управления членством в командах.
type AssignmentUseCase struct {
	assignmentRepo domain.AssignmentRepository
	teamRepo       domain.TeamRepository
	userRepo       domain.UserRepository
}

// NewAssignmentUseCase создает новый экземпляр AssignmentUseCase.
func NewAssignmentUseCase(
	assignmentRepo domain.AssignmentRepository,
	teamRepo domain.TeamRepository,
	userRepo domain.UserRepository,
) domain.AssignmentUseCase {
	return &AssignmentUseCase{
		assignmentRepo: assignmentRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
	}
}

// ChangeUserTeam переводит пользователя в указанную команду.
// Перед записью проверяется существование целевой команды; сам перевод
// выполняется репозиторием одной транзакцией.
func (uc *AssignmentUseCase) ChangeUserTeam(ctx context.Context, userID string, teamID int) (*domain.TeamChangeResult, error) {
	// Валидация
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if teamID <= 0 {
		return nil, domain.ErrInvalidTeamID
	}

	// Проверяем, что целевая команда существует
	exists, err := uc.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	transition, err := uc.assignmentRepo.ChangeTeam(ctx, userID, teamID)
	if err != nil {
		return nil, err
	}

	result := &domain.TeamChangeResult{
		Previous: transition.Previous,
		Current:  transition.Current,
	}

	switch {
	case !transition.Changed:
		// Пользователь уже состоит в целевой команде, запись не менялась
	case transition.Previous != nil:
		result.Message = fmt.Sprintf("user has been moved from team %d to team %d", transition.Previous.TeamID, teamID)
	default:
		result.Message = fmt.Sprintf("user has been assigned to team %d", teamID)
	}

	return result, nil
}

// GetCurrentAssignment возвращает текущее назначение пользователя или nil.
func (uc *AssignmentUseCase) GetCurrentAssignment(ctx context.Context, userID string) (*domain.TeamAssignment, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	return uc.assignmentRepo.GetCurrent(ctx, userID)
}

// GetAssignmentHistory возвращает историю членства пользователя,
// от раннего интервала к позднему.
func (uc *AssignmentUseCase) GetAssignmentHistory(ctx context.Context, userID string) ([]*domain.TeamAssignment, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	return uc.assignmentRepo.GetHistory(ctx, userID)
}

// FindAssignments возвращает назначения по фильтру.
func (uc *AssignmentUseCase) FindAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.TeamAssignment, error) {
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return uc.assignmentRepo.Find(ctx, filter)
}

// GetTeamRoster возвращает текущий состав команды, обогащенный данными
// пользователей для отображения.
func (uc *AssignmentUseCase) GetTeamRoster(ctx context.Context, teamID int) ([]*domain.RosterEntry, error) {
	if teamID <= 0 {
		return nil, domain.ErrInvalidTeamID
	}

	exists, err := uc.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	assignments, err := uc.assignmentRepo.GetOpenForTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	roster := make([]*domain.RosterEntry, 0, len(assignments))
	for _, assignment := range assignments {
		user, err := uc.userRepo.GetByID(ctx, assignment.UserID)
		if err != nil {
			return nil, err
		}
		roster = append(roster, &domain.RosterEntry{
			Assignment: assignment,
			User:       user,
		})
	}

	return roster, nil
}
