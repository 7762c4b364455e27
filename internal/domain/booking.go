package domain

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// BookingStatus represents the status of a tee-time booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
// It is driven by the payment collaborator and never affects the booking status
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// FeeType represents the green fee variant of a booking
type FeeType string

const (
	FeeNineHoles FeeType = "nine_holes"
	FeeAllDay    FeeType = "all_day"
)

// IsValid returns true if the fee type is a recognized value
func (f FeeType) IsValid() bool {
	return f == FeeNineHoles || f == FeeAllDay
}

// Booking represents one tee-time reservation.
// A confirmed booking occupies exactly one (booking_date, start_time) slot;
// the uniqueness is enforced by the store, not by application code.
type Booking struct {
	ID          int64
	UserID      *int64 // nil = guest booking
	GuestName   *string
	GuestPhone  *string
	BookingDate time.Time
	StartTime   types.TimeString
	PlayerCount int
	FeeType     FeeType
	CartRental  bool

	// Pricing snapshot taken at admission time
	GreenFee    float64
	CartFee     float64
	TotalAmount float64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGuest returns true if the booking has no owning user identity
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking status permits cancellation.
// All non-confirmed statuses are terminal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking status permits modification
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusConfirmed
}

// TeeOffAt returns the tee-off moment of the booking in loc.
// Used for cancellation deadline math.
func (b *Booking) TeeOffAt(loc *time.Location) (time.Time, error) {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, loc)
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// CanTransitionTo validates the booking status state machine:
// confirmed -> {cancelled, completed, no_show}; everything else is terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	switch next {
	case StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// DayBookingsFilter фильтр для получения бронирований на день
type DayBookingsFilter struct {
	Date            time.Time      // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и завершённые бронирования
}
