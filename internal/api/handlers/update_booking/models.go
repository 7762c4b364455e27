package update_booking

import (
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model.
// Поддерживается частичное обновление: nil-поля не изменяются.
type UpdateBookingRequest struct {
	PlayerCount *int  `json:"playerCount,omitempty"`
	CartRental  *bool `json:"cartRental,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest(actor access.Actor) models.UpdateDetailsRequest {
	return models.UpdateDetailsRequest{
		Actor:       actor,
		PlayerCount: r.PlayerCount,
		CartRental:  r.CartRental,
	}
}
