package update_course_settings

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

type CourseService interface {
	UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
