package domain

import (
	"errors"
	"fmt"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidTeamID     = errors.New("invalid team id")
	ErrInvalidTeamName   = errors.New("invalid team name")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPermission = errors.New("invalid permission status")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrConsistencyViolation сигнализирует, что у пользователя обнаружено
	// более одного открытого интервала членства. Инвариант нарушен ранее,
	// ошибка фатальная и не исправляется автоматически.
	ErrConsistencyViolation = errors.New("multiple open assignments for user")
)

// PersistenceError представляет ошибку хранилища: обрыв соединения,
// нарушение ограничения, прерванная транзакция. Причина сохраняется
// для errors.Is/As.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError оборачивает ошибку хранилища с указанием операции.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// HTTPError для ответов API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidUserID:        {Code: "INVALID_REQUEST", Message: "invalid user id"},
	ErrInvalidTeamID:        {Code: "INVALID_REQUEST", Message: "invalid team id"},
	ErrInvalidTeamName:      {Code: "INVALID_REQUEST", Message: "invalid team name"},
	ErrInvalidEmail:         {Code: "INVALID_REQUEST", Message: "invalid email"},
	ErrInvalidPermission:    {Code: "INVALID_REQUEST", Message: "status must be approved or declined"},
	ErrUserAlreadyExists:    {Code: "USER_EXISTS", Message: "email already registered"},
	ErrTeamAlreadyExists:    {Code: "TEAM_EXISTS", Message: "team name already exists"},
	ErrUserNotFound:         {Code: "NOT_FOUND", Message: "user not found"},
	ErrTeamNotFound:         {Code: "NOT_FOUND", Message: "team not found"},
	ErrAssignmentNotFound:   {Code: "NOT_FOUND", Message: "assignment not found"},
	ErrConsistencyViolation: {Code: "CONSISTENCY_VIOLATION", Message: "multiple open assignments detected"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	httpErr, exists := ErrorMapping[err]
	return httpErr, exists
}
