package get_booking

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, actor access.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
