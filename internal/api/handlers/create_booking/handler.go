package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/api/middleware"
	createBooking "github.com/m04kA/GCS-TeeTimeService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotOffGrid        = "время не попадает в сетку слотов"
	msgDateInPast         = "нельзя забронировать прошедшую дату"
	msgAdvanceWindow      = "дата выходит за пределы окна предварительного бронирования"
	msgSlotNotAvailable   = "слот недоступен для бронирования"
	msgStorageUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Без X-User-ID запрос считается гостевым: guestName обязателен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Владелец приходит из заголовков gateway, не из тела запроса
	var userID *int64
	if actor, ok := middleware.ActorFromContext(r.Context()); ok {
		id := actor.UserID
		userID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotOffGrid):
			h.logger.Warn("POST /bookings - Slot off grid: date=%s, start_time=%s",
				req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotOffGrid)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrAdvanceWindowExceeded):
			h.logger.Warn("POST /bookings - Advance window exceeded: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgAdvanceWindow)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, start_time=%s",
				req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStorageUnavailable):
			h.logger.Warn("POST /bookings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, start_time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, start_time=%s, total=%.2f",
		result.ID, req.Date, req.StartTime, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
