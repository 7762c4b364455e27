package bookings

import (
	"context"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateDetails(ctx context.Context, id int64, playerCount int, cartRental bool, greenFee, cartFee, totalAmount float64) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// SettingsRepository интерфейс репозитория настроек поля
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CourseSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentsClient интерфейс клиента платёжного сервиса
type PaymentsClient interface {
	RequestRefundFireAndForget(ctx context.Context, req *payments.RefundRequest)
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
