package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedStartTimes получает времена подтверждённых бронирований на дату
	GetConfirmedStartTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// SettingsRepository интерфейс репозитория настроек поля
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CourseSettings, error)
}

// ConditionRepository интерфейс репозитория состояния поля
type ConditionRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CourseCondition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
