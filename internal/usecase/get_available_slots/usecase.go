package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	bookingRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	conditionRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	settingsRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
)

// UseCase use case для получения сетки ти-таймов с доступностью
//
// Чистый расчёт слотов (generateTeeSlots + markAvailability) вынесен в slots.go
// и переиспользуется при создании бронирования, чтобы отображение и валидация
// никогда не расходились.
type UseCase struct {
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	conditionRepo ConditionRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	conditionRepo ConditionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		conditionRepo: conditionRepo,
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов на дату
//
// Дата в прошлом не является ошибкой: расчёт остаётся чистой функцией
// отображения, отказ в бронировании на прошедшие даты - задача admission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем настройки поля (снепшот на момент запроса)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = domain.DefaultCourseSettings()
		uc.logger.Info("GetAvailableSlots: using default course settings")
	}

	if err := settings.Validate(); err != nil {
		uc.logger.Error("GetAvailableSlots: course settings are invalid: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	// 3. Получаем override состояния поля на дату (отсутствие = обычный режим)
	cond, err := uc.conditionRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, conditionRepo.ErrConditionNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get course condition: %v", err)
		return nil, fmt.Errorf("%w: failed to get course condition: %v", ErrInternal, err)
	}

	// 4. Получаем времена подтверждённых бронирований на дату
	confirmedTimes, err := uc.bookingRepo.GetConfirmedStartTimes(ctx, req.Date)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStorageUnavailable) {
			uc.logger.Error("GetAvailableSlots: storage unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку и размечаем доступность
	slotTimes, err := generateTeeSlots(settings.OpenTime, settings.CloseTime, settings.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate tee slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate tee slots: %v", ErrInternal, err)
	}

	slots := markAvailability(slotTimes, confirmedTimes, cond)

	// Сводка состояния поля для ответа
	overall := domain.ConditionGood
	holes := domain.MaxHolesAvailable
	if cond != nil {
		overall = cond.OverallCondition
		holes = cond.HolesAvailable
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, condition=%s",
		len(slots), req.Date.Format(domain.DateFormat), overall)

	return &Response{
		Date:            req.Date,
		Condition:       overall,
		HolesAvailable:  holes,
		IntervalMinutes: settings.SlotIntervalMinutes,
		Slots:           slots,
	}, nil
}
