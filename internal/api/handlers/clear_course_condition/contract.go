package clear_course_condition

import (
	"context"

	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

type CourseService interface {
	ClearCondition(ctx context.Context, req models.ClearConditionRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
