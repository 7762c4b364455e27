package get_course_settings

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

type CourseService interface {
	GetSettings(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
