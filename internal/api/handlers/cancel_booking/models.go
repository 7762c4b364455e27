package cancel_booking

import (
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actor access.Actor) models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return models.CancelBookingRequest{
		Actor:  actor,
		Reason: reason,
	}
}
