package course

import (
	"context"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек поля
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CourseSettings, error)
	Upsert(ctx context.Context, s *domain.CourseSettings) (*domain.CourseSettings, error)
}

// ConditionRepository интерфейс репозитория состояния поля
type ConditionRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CourseCondition, error)
	Upsert(ctx context.Context, c *domain.CourseCondition) (*domain.CourseCondition, error)
	Delete(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
