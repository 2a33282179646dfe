package usecase

import (
	"context"
	"strings"

	"team-membership-service/internal/domain"
)

// RegistrationUseCase реализует бизнес-логику регистрации пользователей
// и обработки их заявок.
type RegistrationUseCase struct {
	userRepo       domain.UserRepository
	teamRepo       domain.TeamRepository
	assignmentRepo domain.AssignmentRepository
	ids            domain.IDGenerator
}

// NewRegistrationUseCase создает новый экземпляр RegistrationUseCase.
func NewRegistrationUseCase(
	userRepo domain.UserRepository,
	teamRepo domain.TeamRepository,
	assignmentRepo domain.AssignmentRepository,
	ids domain.IDGenerator,
) domain.RegistrationUseCase {
	return &RegistrationUseCase{
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		assignmentRepo: assignmentRepo,
		ids:            ids,
	}
}

// RegisterUser регистрирует нового пользователя и, если запрошено,
// сразу назначает его в команду. Регистрация без команды не создает
// ни одной записи назначения.
func (uc *RegistrationUseCase) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (*domain.RegisterUserResult, error) {
	// Валидация
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	// Команда проверяется до любой записи
	if req.TeamID != nil {
		if *req.TeamID <= 0 {
			return nil, domain.ErrInvalidTeamID
		}
		teamExists, err := uc.teamRepo.Exists(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		if !teamExists {
			return nil, domain.ErrTeamNotFound
		}
	}

	user, err := uc.userRepo.Create(ctx, &domain.User{
		ID:         uc.ids.NewID(),
		Email:      email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Permission: domain.PermissionPending,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.RegisterUserResult{User: user}

	// Первое назначение: закрывать нечего, репозиторий просто откроет интервал
	if req.TeamID != nil {
		transition, err := uc.assignmentRepo.ChangeTeam(ctx, user.ID, *req.TeamID)
		if err != nil {
			return nil, err
		}
		result.Assignment = transition.Current
	}

	return result, nil
}

// GetPendingUsers возвращает пользователей с необработанной заявкой.
func (uc *RegistrationUseCase) GetPendingUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.GetPending(ctx)
}

// ProcessUserRequest одобряет или отклоняет заявку пользователя.
func (uc *RegistrationUseCase) ProcessUserRequest(ctx context.Context, userID, status string) (*domain.ProcessUserResult, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if status != domain.PermissionApproved && status != domain.PermissionDeclined {
		return nil, domain.ErrInvalidPermission
	}

	user, err := uc.userRepo.UpdatePermissionStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	message := "user request has been declined"
	if status == domain.PermissionApproved {
		message = "user request has been approved successfully"
	}

	return &domain.ProcessUserResult{
		User:    user,
		Message: message,
	}, nil
}
