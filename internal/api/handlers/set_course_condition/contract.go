package set_course_condition

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

type CourseService interface {
	SetCondition(ctx context.Context, req models.SetConditionRequest) (*models.ConditionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
