package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	bookingRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	conditionRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	membershipRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/membership"
	settingsRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
)

// UseCase use case создания бронирования ти-тайма.
//
// Пайплайн проверок выполняется строго по порядку и прерывается на первой
// ошибке: структура запроса -> сетка слотов -> окно бронирования ->
// доступность слота -> атомарная вставка -> цена.
//
// Предварительная проверка доступности носит рекомендательный характер:
// настоящий арбитр - условная вставка в хранилище. Проигранная гонка
// возвращает тот же ErrSlotNotAvailable, что и предварительная проверка,
// чтобы по ответу нельзя было отличить гонку от обычной занятости.
type UseCase struct {
	bookingRepo    BookingRepository
	settingsRepo   SettingsRepository
	conditionRepo  ConditionRepository
	membershipRepo MembershipRepository
	payments       PaymentsClient
	notifications  NotificationsClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	conditionRepo ConditionRepository,
	membershipRepo MembershipRepository,
	paymentsClient PaymentsClient,
	notificationsClient NotificationsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		settingsRepo:   settingsRepo,
		conditionRepo:  conditionRepo,
		membershipRepo: membershipRepo,
		payments:       paymentsClient,
		notifications:  notificationsClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%v, date=%s, time=%s, players=%d, fee=%s, cart=%t",
		userRef(req.UserID), req.Date.Format(domain.DateFormat), req.StartTime,
		req.PlayerCount, req.FeeType, req.CartRental)

	// 1. Структурная валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Настройки поля - снепшот на момент коммита
	// Изменение тарифов между показом слотов и сабмитом разрешается
	// в пользу текущих настроек; это ожидаемое поведение
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = domain.DefaultCourseSettings()
		uc.logger.Info("CreateBooking: using default course settings")
	}

	if err := settings.Validate(); err != nil {
		uc.logger.Error("CreateBooking: course settings are invalid: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	// 4. Время должно попадать на сетку слотов
	if err := validateSlotOnGrid(req.StartTime, settings); err != nil {
		uc.logger.Warn("CreateBooking: slot grid validation failed: %v", err)
		return nil, err
	}

	// 5. Окно предварительного бронирования вызывающего
	isMember := uc.resolveMembership(ctx, req.UserID, now)
	advanceDays := settings.AdvanceDaysFor(isMember)

	if err := validateEntitlementWindow(req.Date, now, advanceDays); err != nil {
		uc.logger.Warn("CreateBooking: entitlement window check failed (member=%t, days=%d): %v",
			isMember, advanceDays, err)
		return nil, err
	}

	// 6. Предварительная проверка доступности (свежее чтение, без кэша)
	cond, err := uc.conditionRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, conditionRepo.ErrConditionNotFound) {
		uc.logger.Error("CreateBooking: failed to get course condition: %v", err)
		return nil, fmt.Errorf("%w: failed to get course condition: %v", ErrInternal, err)
	}

	confirmedTimes, err := uc.bookingRepo.GetConfirmedStartTimes(ctx, req.Date)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStorageUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if reason := slotUnavailableReason(req.StartTime, confirmedTimes, cond); reason != "" {
		// Причина остаётся в логах; наружу уходит единый ответ
		uc.logger.Warn("CreateBooking: slot %s on %s unavailable: %s",
			req.StartTime, req.Date.Format(domain.DateFormat), reason)
		return nil, ErrSlotNotAvailable
	}

	// 7. Цена по текущим настройкам
	greenFee, cartFee, total := computePricing(req, settings)

	paymentStatus := domain.PaymentPending
	if total == 0 {
		paymentStatus = domain.PaymentPaid
	}

	booking := &domain.Booking{
		UserID:        req.UserID,
		GuestName:     req.GuestName,
		GuestPhone:    req.GuestPhone,
		BookingDate:   req.Date,
		StartTime:     req.StartTime,
		PlayerCount:   req.PlayerCount,
		FeeType:       req.FeeType,
		CartRental:    req.CartRental,
		GreenFee:      greenFee,
		CartFee:       cartFee,
		TotalAmount:   total,
		Status:        domain.StatusConfirmed,
		PaymentStatus: paymentStatus,
	}

	// 8. Атомарная условная вставка - единственная точка взаимного исключения
	created, err := uc.bookingRepo.InsertIfSlotFree(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			// Гонка проиграна между проверкой и вставкой - тот же ответ,
			// что и при предварительной проверке
			uc.logger.Warn("CreateBooking: lost insert race for slot %s on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotNotAvailable
		case errors.Is(err, bookingRepo.ErrStorageUnavailable):
			uc.logger.Error("CreateBooking: storage unavailable during insert: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		default:
			uc.logger.Error("CreateBooking: failed to insert booking: %v", err)
			return nil, fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: booking id=%d confirmed for %s %s, total=%.2f, payment=%s",
		created.ID, created.BookingDate.Format(domain.DateFormat), created.StartTime,
		created.TotalAmount, created.PaymentStatus)

	// 9. Пост-фактум уведомляем коллабораторов; их сбои не откатывают бронирование
	uc.notifyCollaborators(ctx, created)

	return &Response{
		ID:                 created.ID,
		UserID:             created.UserID,
		GuestName:          created.GuestName,
		GuestPhone:         created.GuestPhone,
		BookingDate:        created.BookingDate,
		StartTime:          created.StartTime,
		PlayerCount:        created.PlayerCount,
		FeeType:            created.FeeType,
		CartRental:         created.CartRental,
		GreenFee:           created.GreenFee,
		CartFee:            created.CartFee,
		TotalAmount:        created.TotalAmount,
		Status:             created.Status,
		PaymentStatus:      created.PaymentStatus,
		AdvanceDaysApplied: advanceDays,
		IsMember:           isMember,
		CreatedAt:          created.CreatedAt,
		UpdatedAt:          created.UpdatedAt,
	}, nil
}

// resolveMembership определяет класс вызывающего: член клуба или гость.
// Недоступность таблицы членств деградирует до гостевого окна - это
// безопасное направление (меньший лимит).
func (uc *UseCase) resolveMembership(ctx context.Context, userID *int64, now time.Time) bool {
	if userID == nil {
		return false
	}

	m, err := uc.membershipRepo.GetActiveByUserID(ctx, *userID, now)
	if err != nil {
		if !errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			uc.logger.Error("CreateBooking: membership lookup failed for user=%d, falling back to guest window: %v",
				*userID, err)
		}
		return false
	}

	return m.IsActiveOn(now)
}

// notifyCollaborators отправляет события платёжному сервису и сервису
// уведомлений. Выполняется в отдельной горутине с отвязанным контекстом,
// чтобы не задерживать ответ и не зависеть от отмены запроса.
func (uc *UseCase) notifyCollaborators(ctx context.Context, b *domain.Booking) {
	detached := context.WithoutCancel(ctx)

	go func() {
		if b.TotalAmount > 0 {
			uc.payments.CreateIntentFireAndForget(detached, &payments.IntentRequest{
				BookingID: b.ID,
				Amount:    b.TotalAmount,
				Currency:  "EUR",
			})
		}

		uc.notifications.SendFireAndForget(detached, &notifications.Event{
			Type:      notifications.EventBookingConfirmed,
			BookingID: b.ID,
			UserID:    b.UserID,
			Payload: map[string]interface{}{
				"date":       b.BookingDate.Format(domain.DateFormat),
				"start_time": b.StartTime.String(),
				"players":    b.PlayerCount,
				"total":      b.TotalAmount,
			},
		})
	}()
}

// userRef форматирует идентификатор вызывающего для логов
func userRef(userID *int64) string {
	if userID == nil {
		return "guest"
	}
	return fmt.Sprintf("%d", *userID)
}
