package get_day_sheet

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

type BookingService interface {
	GetDaySheet(ctx context.Context, req models.GetDaySheetRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
