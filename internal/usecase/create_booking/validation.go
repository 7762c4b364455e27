package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// validateRequest валидирует структуру запроса
// Проверки, не требующие обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PlayerCount < domain.MinPlayerCount || req.PlayerCount > domain.MaxPlayerCount {
		return fmt.Errorf("%w: playerCount must be between %d and %d",
			ErrInvalidInput, domain.MinPlayerCount, domain.MaxPlayerCount)
	}

	if !req.FeeType.IsValid() {
		return fmt.Errorf("%w: unknown feeType %q", ErrInvalidInput, req.FeeType)
	}

	// Гостевое бронирование должно содержать контактное имя
	if req.UserID == nil {
		if req.GuestName == nil || *req.GuestName == "" {
			return fmt.Errorf("%w: guestName is required for guest bookings", ErrInvalidInput)
		}
		if len(*req.GuestName) > domain.MaxGuestNameLength {
			return fmt.Errorf("%w: guestName is too long", ErrInvalidInput)
		}
	}

	return nil
}

// validateSlotOnGrid проверяет, что время попадает на сетку слотов:
// внутри рабочего окна и кратно шагу от времени открытия
func validateSlotOnGrid(startTime types.TimeString, settings *domain.CourseSettings) error {
	if startTime.IsBefore(settings.OpenTime) || !startTime.IsBefore(settings.CloseTime) {
		return fmt.Errorf("%w: %s is outside operating hours %s-%s",
			ErrSlotOffGrid, startTime, settings.OpenTime, settings.CloseTime)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	openMinutes, err := settings.OpenTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if (startMinutes-openMinutes)%settings.SlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: %s does not align to the %d-minute grid from %s",
			ErrSlotOffGrid, startTime, settings.SlotIntervalMinutes, settings.OpenTime)
	}

	return nil
}

// validateEntitlementWindow проверяет дату против окна предварительного
// бронирования вызывающего. Сообщение об ошибке содержит применённый лимит -
// гостевое и членское окна различаются.
func validateEntitlementWindow(bookingDate time.Time, now time.Time, advanceDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrDateInPast
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book up to %d days in advance", ErrAdvanceWindowExceeded, advanceDays)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// slotUnavailableReason возвращает причину недоступности запрошенного слота
// либо пустую строку, если слот доступен.
// Повторяет логику markAvailability для одного слота - display и admission
// используют одни и те же правила.
func slotUnavailableReason(
	startTime types.TimeString,
	confirmedTimes []types.TimeString,
	cond *domain.CourseCondition,
) domain.UnavailableReason {
	if cond != nil && cond.BlocksPlay() {
		if cond.OverallCondition == domain.ConditionClosed {
			return domain.ReasonCourseClosed
		}
		return domain.ReasonNoHoles
	}

	for _, t := range confirmedTimes {
		if t == startTime {
			return domain.ReasonBooked
		}
	}

	return ""
}

// computePricing вычисляет ценовой снепшот бронирования по текущим настройкам.
// greenFee = тариф за игрока × количество игроков; аренда карта - за флайт.
func computePricing(req *Request, settings *domain.CourseSettings) (greenFee, cartFee, total float64) {
	greenFee = settings.GreenFeeRate(req.FeeType) * float64(req.PlayerCount)
	if req.CartRental {
		cartFee = settings.CartRentalRate
	}
	return greenFee, cartFee, greenFee + cartFee
}
