package domain

import (
	"context"
	"time"
)

// TeamAssignment представляет интервал членства пользователя в команде.
// EffectiveTo == nil означает открытый интервал (текущее назначение).
type TeamAssignment struct {
	ID            string
	UserID        string
	TeamID        int
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time
}

// IsOpen сообщает, является ли назначение текущим.
func (a *TeamAssignment) IsOpen() bool {
	return a.EffectiveTo == nil
}

// TeamTransition представляет результат смены команды: закрытый предыдущий
// интервал (если был) и новый открытый интервал.
type TeamTransition struct {
	Previous *TeamAssignment
	Current  *TeamAssignment
	// Changed == false, если пользователь уже состоял в целевой команде
	// и запись не изменялась.
	Changed bool
}

// AssignmentFilter задает явный набор опциональных условий выборки
// назначений. Nil-поле означает отсутствие условия.
type AssignmentFilter struct {
	UserID *string
	TeamID *int
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// AssignmentRepository определяет контракт для работы с хранилищем
// интервалов членства. Единственный пишущий путь к таблице назначений.
type AssignmentRepository interface {
	// ChangeTeam атомарно закрывает открытый интервал пользователя (если есть)
	// и открывает новый для указанной команды.
	ChangeTeam(ctx context.Context, userID string, teamID int) (*TeamTransition, error)
	GetCurrent(ctx context.Context, userID string) (*TeamAssignment, error)
	GetHistory(ctx context.Context, userID string) ([]*TeamAssignment, error)
	GetOpenForTeam(ctx context.Context, teamID int) ([]*TeamAssignment, error)
	Find(ctx context.Context, filter AssignmentFilter) ([]*TeamAssignment, error)
}
