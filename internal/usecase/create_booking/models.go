package create_booking

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      *int64           // ID пользователя; nil = гостевое бронирование
	GuestName   *string          // Имя гостя (обязательно для гостевых бронирований)
	GuestPhone  *string          // Телефон гостя (опционально)
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время ти-тайма (например, "09:15")
	PlayerCount int              // Количество игроков (1..4)
	FeeType     domain.FeeType   // Тип тарифа: nine_holes или all_day
	CartRental  bool             // Аренда карта
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      *int64
	GuestName   *string
	GuestPhone  *string
	BookingDate time.Time
	StartTime   types.TimeString
	PlayerCount int
	FeeType     domain.FeeType
	CartRental  bool

	// Ценовой снепшот на момент подтверждения
	GreenFee    float64
	CartFee     float64
	TotalAmount float64

	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus

	// Применённое окно предварительного бронирования (для логов и отладки)
	AdvanceDaysApplied int
	IsMember           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
