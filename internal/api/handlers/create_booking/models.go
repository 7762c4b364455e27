package create_booking

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	createBooking "github.com/m04kA/GCS-TeeTimeService/internal/usecase/create_booking"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName   *string `json:"guestName,omitempty"`
	GuestPhone  *string `json:"guestPhone,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	PlayerCount int     `json:"playerCount"`
	FeeType     string  `json:"feeType"`
	CartRental  bool    `json:"cartRental"`
}

// BookingResponse HTTP response model
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
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case.
// userID nil означает гостевое бронирование.
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		Date:        date,
		StartTime:   types.TimeString(r.StartTime),
		PlayerCount: r.PlayerCount,
		FeeType:     domain.FeeType(r.FeeType),
		CartRental:  r.CartRental,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		GuestName:     resp.GuestName,
		GuestPhone:    resp.GuestPhone,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		PlayerCount:   resp.PlayerCount,
		FeeType:       string(resp.FeeType),
		CartRental:    resp.CartRental,
		GreenFee:      resp.GreenFee,
		CartFee:       resp.CartFee,
		TotalAmount:   resp.TotalAmount,
		Status:        string(resp.Status),
		PaymentStatus: string(resp.PaymentStatus),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
