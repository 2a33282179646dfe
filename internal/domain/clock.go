package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clock выдает текущее время. Внедряется в репозиторий для
// детерминированных тестов.
type Clock interface {
	Now() time.Time
}

// SystemClock реализует Clock через системное время.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator выдает уникальный идентификатор для новой записи назначения.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator реализует IDGenerator через UUID v4.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
