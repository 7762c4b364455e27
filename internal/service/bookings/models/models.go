package models

import (
	"errors"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor  access.Actor
	Reason string
}

// UpdateStatusRequest запрос на смену статуса бронирования (персонал)
type UpdateStatusRequest struct {
	Actor  access.Actor
	Status string
}

// UpdateDetailsRequest запрос на изменение бронирования
// nil-поля не изменяются
type UpdateDetailsRequest struct {
	Actor       access.Actor
	PlayerCount *int
	CartRental  *bool
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	Actor  access.Actor
	UserID int64
	Status *string
}

// GetDaySheetRequest запрос листа дня (персонал)
type GetDaySheetRequest struct {
	Actor           access.Actor
	Date            time.Time
	IncludeInactive bool
}

// PaymentEventRequest событие от платёжного сервиса
type PaymentEventRequest struct {
	BookingID int64
	Outcome   string // succeeded | failed | refunded
}

// Response модели

// BookingResponse представление бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        *int64  `json:"userId,omitempty"`
	GuestName     *string `json:"guestName,omitempty"`
	GuestPhone    *string `json:"guestPhone,omitempty"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	PlayerCount   int     `json:"playerCount"`
	FeeType       string  `json:"feeType"`
	CartRental    bool    `json:"cartRental"`
	GreenFee      float64 `json:"greenFee"`
	CartFee       float64 `json:"cartFee"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		GuestName:          b.GuestName,
		GuestPhone:         b.GuestPhone,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		PlayerCount:        b.PlayerCount,
		FeeType:            string(b.FeeType),
		CartRental:         b.CartRental,
		GreenFee:           b.GreenFee,
		CartFee:            b.CartFee,
		TotalAmount:        b.TotalAmount,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// ToDomainPaymentStatus конвертирует исход платёжного события в PaymentStatus
func ToDomainPaymentStatus(outcome string) (domain.PaymentStatus, error) {
	switch outcome {
	case "succeeded":
		return domain.PaymentPaid, nil
	case "failed":
		return domain.PaymentFailed, nil
	case "refunded":
		return domain.PaymentRefunded, nil
	default:
		return "", ErrInvalidStatus
	}
}
