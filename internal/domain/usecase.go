package domain

import "context"

// TeamChangeResult представляет результат сценария смены команды:
// предыдущее назначение (nil при первом назначении), новое назначение
// и человекочитаемое описание перехода. Message пустой, если пользователь
// уже состоял в целевой команде и запись не менялась.
type TeamChangeResult struct {
	Previous *TeamAssignment
	Current  *TeamAssignment
	Message  string
}

// RosterEntry представляет участника текущего состава команды.
type RosterEntry struct {
	Assignment *TeamAssignment
	User       *User
}

// RegisterUserRequest описывает данные регистрации нового пользователя.
// TeamID == nil означает регистрацию без назначения в команду.
type RegisterUserRequest struct {
	Email     string
	FirstName string
	LastName  string
	TeamID    *int
}

// RegisterUserResult представляет результат регистрации.
type RegisterUserResult struct {
	User       *User
	Assignment *TeamAssignment
}

// ProcessUserResult представляет результат обработки заявки пользователя.
type ProcessUserResult struct {
	User    *User
	Message string
}

// AssignmentUseCase определяет бизнес-логику управления членством в командах.
type AssignmentUseCase interface {
	ChangeUserTeam(ctx context.Context, userID string, teamID int) (*TeamChangeResult, error)
	GetCurrentAssignment(ctx context.Context, userID string) (*TeamAssignment, error)
	GetAssignmentHistory(ctx context.Context, userID string) ([]*TeamAssignment, error)
	FindAssignments(ctx context.Context, filter AssignmentFilter) ([]*TeamAssignment, error)
	GetTeamRoster(ctx context.Context, teamID int) ([]*RosterEntry, error)
}

// RegistrationUseCase определяет бизнес-логику регистрации пользователей.
type RegistrationUseCase interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error)
	GetPendingUsers(ctx context.Context) ([]*User, error)
	ProcessUserRequest(ctx context.Context, userID, status string) (*ProcessUserResult, error)
}

// TeamUseCase определяет бизнес-логику для работы с каталогом команд.
type TeamUseCase interface {
	CreateTeam(ctx context.Context, name, description string) (*Team, error)
	GetTeam(ctx context.Context, teamID int) (*Team, error)
	GetAllTeams(ctx context.Context) ([]*Team, error)
	DeleteTeam(ctx context.Context, teamID int) error
	GetTeamsWithEffectiveUsers(ctx context.Context) ([]*TeamWithUsers, error)
}
