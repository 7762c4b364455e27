package set_course_condition

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные состояния поля"
	msgForbidden          = "доступ запрещен"
)

// SetConditionRequest HTTP request model
type SetConditionRequest struct {
	OverallCondition string  `json:"overallCondition"`
	HolesAvailable   int     `json:"holesAvailable"`
	Notes            *string `json:"notes,omitempty"`
}

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

// Handle PUT /api/v1/course/conditions/{date}
// Доступно только персоналу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /course/conditions/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetConditionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /course/conditions/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	result, err := h.service.SetCondition(r.Context(), models.SetConditionRequest{
		Actor:            actor,
		Date:             date,
		OverallCondition: req.OverallCondition,
		HolesAvailable:   req.HolesAvailable,
		Notes:            req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, course.ErrAccessDenied):
			h.logger.Warn("PUT /course/conditions/{date} - Access denied: actor_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, course.ErrInvalidInput):
			h.logger.Warn("PUT /course/conditions/{date} - Invalid condition: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /course/conditions/{date} - Failed to set condition: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /course/conditions/{date} - Condition set: date=%s, condition=%s, holes=%d",
		vars["date"], result.OverallCondition, result.HolesAvailable)
	handlers.RespondJSON(w, http.StatusOK, result)
}
