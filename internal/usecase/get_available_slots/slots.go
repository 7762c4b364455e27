package get_available_slots

import (
	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// generateTeeSlots генерирует сетку ти-таймов на день: от времени открытия
// с фиксированным шагом intervalMinutes, строго до времени закрытия.
//
// Последний неполный слот (начало до закрытия, конец после) генерируется:
// граница сетки - это время старта, а не конца раунда. Слот с началом
// ровно в closeTime уже не генерируется.
//
// Функция детерминирована: одинаковые входы дают одинаковую последовательность.
func generateTeeSlots(openTime, closeTime types.TimeString, intervalMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// markAvailability размечает доступность каждого слота сетки.
//
// Слот недоступен, если:
// - на это время уже есть подтверждённое бронирование, либо
// - поле закрыто на эту дату (condition = closed), либо
// - на дату нет доступных лунок (holes_available = 0).
//
// Статус поля имеет приоритет над занятостью: при закрытом поле все слоты
// недоступны независимо от бронирований.
func markAvailability(
	slotTimes []types.TimeString,
	confirmedTimes []types.TimeString,
	cond *domain.CourseCondition,
) []domain.TeeSlot {
	// Причина недоступности на уровне дня, если она есть
	var dayReason domain.UnavailableReason
	if cond != nil && cond.BlocksPlay() {
		if cond.OverallCondition == domain.ConditionClosed {
			dayReason = domain.ReasonCourseClosed
		} else {
			dayReason = domain.ReasonNoHoles
		}
	}

	booked := make(map[types.TimeString]struct{}, len(confirmedTimes))
	for _, t := range confirmedTimes {
		booked[t] = struct{}{}
	}

	slots := make([]domain.TeeSlot, len(slotTimes))
	for i, startTime := range slotTimes {
		slot := domain.TeeSlot{StartTime: startTime, Available: true}

		if dayReason != "" {
			slot.Available = false
			slot.Reason = dayReason
		} else if _, taken := booked[startTime]; taken {
			slot.Available = false
			slot.Reason = domain.ReasonBooked
		}

		slots[i] = slot
	}

	return slots
}

// slotOnGrid проверяет, что время попадает на сетку слотов:
// внутри рабочего окна и кратно шагу от времени открытия
func slotOnGrid(startTime, openTime, closeTime types.TimeString, intervalMinutes int) (bool, error) {
	if startTime.IsBefore(openTime) || !startTime.IsBefore(closeTime) {
		return false, nil
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	openMinutes, err := openTime.Minutes()
	if err != nil {
		return false, err
	}

	return (startMinutes-openMinutes)%intervalMinutes == 0, nil
}
