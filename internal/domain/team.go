package domain

import (
	"context"
	"time"
)

// Team представляет команду из каталога.
type Team struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamWithUsers представляет команду вместе с пользователями,
// чье назначение в нее сейчас открыто.
type TeamWithUsers struct {
	Team  *Team
	Users []*User
}

// TeamRepository определяет контракт для работы с каталогом команд.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) (*Team, error)
	GetByID(ctx context.Context, teamID int) (*Team, error)
	GetAll(ctx context.Context) ([]*Team, error)
	Exists(ctx context.Context, teamID int) (bool, error)
	Delete(ctx context.Context, teamID int) error
	GetTeamsWithEffectiveUsers(ctx context.Context) ([]*TeamWithUsers, error)
}
