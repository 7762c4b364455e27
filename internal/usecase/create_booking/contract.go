package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// InsertIfSlotFree атомарно создает бронирование, если слот свободен
	InsertIfSlotFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// MembershipRepository интерфейс репозитория членств клуба
type MembershipRepository interface {
	GetActiveByUserID(ctx context.Context, userID int64, asOf time.Time) (*domain.Membership, error)
}

// PaymentsClient интерфейс клиента платёжного сервиса
type PaymentsClient interface {
	CreateIntentFireAndForget(ctx context.Context, req *payments.IntentRequest)
}

// NotificationsClient интерфейс клиента сервиса уведомлений
type NotificationsClient interface {
	SendFireAndForget(ctx context.Context, event *notifications.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
