package get_day_sheet

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

const (
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "доступ запрещен"
	msgStorageUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/course/days/{date}/bookings
// Query params: includeInactive (optional, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /course/days/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	result, err := h.service.GetDaySheet(r.Context(), models.GetDaySheetRequest{
		Actor:           actor,
		Date:            date,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /course/days/{date}/bookings - Access denied: actor_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Warn("GET /course/days/{date}/bookings - Storage unavailable: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /course/days/{date}/bookings - Failed to get day sheet: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /course/days/{date}/bookings - Day sheet retrieved: date=%s, count=%d",
		vars["date"], result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
