package payment_events

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCS-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное платёжное событие"
	msgNotFound           = "бронирование не найдено"
	msgStorageUnavailable = "сервис временно недоступен, повторите запрос"
)

// PaymentEventRequest HTTP request model (внутренний webhook платёжного сервиса)
type PaymentEventRequest struct {
	BookingID int64  `json:"booking_id"`
	Outcome   string `json:"outcome"`
}

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

// Handle POST /internal/payment-events
// Платёжный статус никогда не меняет статус бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/payment-events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.HandlePaymentEvent(r.Context(), models.PaymentEventRequest{
		BookingID: req.BookingID,
		Outcome:   req.Outcome,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /internal/payment-events - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /internal/payment-events - Invalid event: booking_id=%d, outcome=%s",
				req.BookingID, req.Outcome)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Warn("POST /internal/payment-events - Storage unavailable: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /internal/payment-events - Failed to handle event: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/payment-events - Event handled: booking_id=%d, outcome=%s",
		req.BookingID, req.Outcome)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
