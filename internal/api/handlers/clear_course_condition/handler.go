package clear_course_condition

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "состояние поля на дату не задано"
	msgForbidden   = "доступ запрещен"
)

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/course/conditions/{date}
// Доступно только персоналу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /course/conditions/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	err = h.service.ClearCondition(r.Context(), models.ClearConditionRequest{
		Actor: actor,
		Date:  date,
	})
	if err != nil {
		switch {
		case errors.Is(err, course.ErrAccessDenied):
			h.logger.Warn("DELETE /course/conditions/{date} - Access denied: actor_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, course.ErrConditionNotFound):
			h.logger.Warn("DELETE /course/conditions/{date} - Not found: date=%s", vars["date"])
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /course/conditions/{date} - Failed to clear condition: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /course/conditions/{date} - Condition cleared: date=%s", vars["date"])
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
