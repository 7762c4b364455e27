package update_course_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные настройки поля"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/course/settings
// Доступно только персоналу. Частичное обновление: отсутствующие поля
// сохраняют текущее значение.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /course/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())
	req.Actor = actor

	result, err := h.service.UpdateSettings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, course.ErrAccessDenied):
			h.logger.Warn("PUT /course/settings - Access denied: actor_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, course.ErrInvalidInput):
			h.logger.Warn("PUT /course/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /course/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /course/settings - Settings updated by user %d", actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
