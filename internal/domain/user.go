package domain

import (
	"context"
	"time"
)

// Статусы заявки пользователя.
const (
	PermissionPending  = "pending"
	PermissionApproved = "approved"
	PermissionDeclined = "declined"
)

// User представляет пользователя из справочника.
type User struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	Permission string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName возвращает отображаемое имя пользователя.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserRepository определяет контракт для работы со справочником пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetPending(ctx context.Context) ([]*User, error)
	UpdatePermissionStatus(ctx context.Context, userID, status string) (*User, error)
}
