package get_course_settings

import (
	"net/http"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
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

// Handle GET /api/v1/course/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /course/settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /course/settings - Settings retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
