package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями:
// чтение, отмена, изменение и переходы статусов.
// Создание бронирований живёт в usecase/create_booking.
type Service struct {
	repo          BookingRepository
	settingsRepo  SettingsRepository
	txManager     TransactionManager
	payments      PaymentsClient
	notifications NotificationsClient
	timeProvider  TimeProvider
	log           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	paymentsClient PaymentsClient,
	notificationsClient NotificationsClient,
	timeProvider TimeProvider,
	log Logger,
) *Service {
	return &Service{
		repo:          repo,
		settingsRepo:  settingsRepo,
		txManager:     txManager,
		payments:      paymentsClient,
		notifications: notificationsClient,
		timeProvider:  timeProvider,
		log:           log,
	}
}

// GetByID возвращает бронирование по ID с проверкой прав доступа.
// Гостевые бронирования доступны только персоналу.
func (s *Service) GetByID(ctx context.Context, id int64, actor access.Actor) (*models.BookingResponse, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if access.ForBooking(actor, b) == access.LevelNone {
		return nil, fmt.Errorf("%w: booking %d", ErrAccessDenied, id)
	}

	return models.FromDomainBooking(b), nil
}

// GetUserBookings возвращает бронирования пользователя.
// Пользователь видит только свои бронирования, персонал - любые.
func (s *Service) GetUserBookings(ctx context.Context, req models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	if access.ForUser(req.Actor, req.UserID) == access.LevelNone {
		return nil, fmt.Errorf("%w: user %d", ErrAccessDenied, req.UserID)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	bookings, err := s.repo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		return nil, s.wrapStorageError("get user bookings", err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetDaySheet возвращает все бронирования на день (лист дня).
// Доступно только персоналу.
func (s *Service) GetDaySheet(ctx context.Context, req models.GetDaySheetRequest) (*models.BookingListResponse, error) {
	if !req.Actor.IsStaff() {
		return nil, fmt.Errorf("%w: day sheet is staff only", ErrAccessDenied)
	}

	bookings, err := s.repo.GetByDate(ctx, domain.DayBookingsFilter{
		Date:            req.Date,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		return nil, s.wrapStorageError("get day sheet", err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Проверка дедлайна и смена статуса выполняются в одной транзакции
// с блокировкой строки, чтобы конкурентная отмена и переход статуса
// не пересеклись. Возврат средств и уведомление отправляются после
// коммита и не влияют на результат отмены.
func (s *Service) Cancel(ctx context.Context, id int64, req models.CancelBookingRequest) (*models.BookingResponse, error) {
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.getBooking(ctx, id)
		if err != nil {
			return err
		}

		switch access.ForBooking(req.Actor, b) {
		case access.LevelNone:
			return fmt.Errorf("%w: booking %d", ErrAccessDenied, id)
		case access.LevelOwner:
			// Дедлайн отмены применяется только к владельцу;
			// персонал может отменить в любой момент
			if err := s.checkCancellationDeadline(ctx, b); err != nil {
				return err
			}
		}

		if !b.CanBeCancelled() {
			return fmt.Errorf("%w: booking %d is %s", ErrCannotCancel, id, b.Status)
		}

		if err := s.repo.Cancel(ctx, id, req.Reason); err != nil {
			if errors.Is(err, booking.ErrNotTransitionable) {
				return fmt.Errorf("%w: booking %d", ErrCannotCancel, id)
			}
			return s.wrapStorageError("cancel booking", err)
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %d cancelled by user %d (staff=%v)", id, req.Actor.UserID, req.Actor.IsStaff())

	s.notifyCancellation(ctx, cancelled, req.Reason)

	return s.GetByID(ctx, id, req.Actor)
}

// UpdateStatus переводит бронирование в терминальный статус (completed, no_show).
// Доступно только персоналу.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if !req.Actor.IsStaff() {
		return nil, fmt.Errorf("%w: status transitions are staff only", ErrAccessDenied)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	// Отмена идёт через Cancel, чтобы причина и дедлайн не терялись
	if status == domain.StatusCancelled || status == domain.StatusConfirmed {
		return nil, fmt.Errorf("%w: transition to %s is not allowed here", ErrInvalidStatus, status)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.getBooking(ctx, id)
		if err != nil {
			return err
		}

		if !b.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, b.Status, status)
		}

		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, booking.ErrNotTransitionable) {
				return fmt.Errorf("%w: booking %d", ErrInvalidStatus, id)
			}
			return s.wrapStorageError("update booking status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %d moved to status %s", id, status)

	return s.GetByID(ctx, id, req.Actor)
}

// UpdateDetails изменяет состав бронирования (количество игроков, аренда кара).
// Изменение разрешено в том же окне, что и отмена, и переоценивается
// по текущим тарифам поля.
func (s *Service) UpdateDetails(ctx context.Context, id int64, req models.UpdateDetailsRequest) (*models.BookingResponse, error) {
	if req.PlayerCount == nil && req.CartRental == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.PlayerCount != nil && (*req.PlayerCount < domain.MinPlayerCount || *req.PlayerCount > domain.MaxPlayerCount) {
		return nil, fmt.Errorf("%w: player count must be between %d and %d",
			ErrInvalidInput, domain.MinPlayerCount, domain.MaxPlayerCount)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.getBooking(ctx, id)
		if err != nil {
			return err
		}

		switch access.ForBooking(req.Actor, b) {
		case access.LevelNone:
			return fmt.Errorf("%w: booking %d", ErrAccessDenied, id)
		case access.LevelOwner:
			if err := s.checkCancellationDeadline(ctx, b); err != nil {
				return err
			}
		}

		if !b.CanBeUpdated() {
			return fmt.Errorf("%w: booking %d is %s", ErrCannotUpdate, id, b.Status)
		}

		playerCount := b.PlayerCount
		if req.PlayerCount != nil {
			playerCount = *req.PlayerCount
		}
		cartRental := b.CartRental
		if req.CartRental != nil {
			cartRental = *req.CartRental
		}

		cfg, err := s.loadSettings(ctx)
		if err != nil {
			return err
		}

		greenFee := cfg.GreenFeeRate(b.FeeType) * float64(playerCount)
		cartFee := 0.0
		if cartRental {
			cartFee = cfg.CartRentalRate
		}
		totalAmount := greenFee + cartFee

		if err := s.repo.UpdateDetails(ctx, id, playerCount, cartRental, greenFee, cartFee, totalAmount); err != nil {
			if errors.Is(err, booking.ErrNotTransitionable) {
				return fmt.Errorf("%w: booking %d", ErrCannotUpdate, id)
			}
			return s.wrapStorageError("update booking details", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking %d details updated by user %d", id, req.Actor.UserID)

	return s.GetByID(ctx, id, req.Actor)
}

// HandlePaymentEvent обрабатывает событие от платёжного сервиса.
// Платёжный статус никогда не влияет на статус бронирования:
// неудачный платёж не освобождает слот.
func (s *Service) HandlePaymentEvent(ctx context.Context, req models.PaymentEventRequest) error {
	status, err := models.ToDomainPaymentStatus(req.Outcome)
	if err != nil {
		return fmt.Errorf("%w: unknown payment outcome %q", ErrInvalidInput, req.Outcome)
	}

	if _, err := s.getBooking(ctx, req.BookingID); err != nil {
		return err
	}

	if err := s.repo.UpdatePaymentStatus(ctx, req.BookingID, status); err != nil {
		return s.wrapStorageError("update payment status", err)
	}

	s.log.Info("Booking %d payment status set to %s", req.BookingID, status)
	return nil
}

// getBooking читает бронирование и мапит ошибки хранилища на ошибки сервиса
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		return nil, s.wrapStorageError("get booking", err)
	}
	return b, nil
}

// checkCancellationDeadline проверяет, что до ти-тайма осталось не меньше
// настроенного окна отмены. Граница включительно: ровно notice часов до
// ти-тайма - ещё можно.
func (s *Service) checkCancellationDeadline(ctx context.Context, b *domain.Booking) error {
	cfg, err := s.loadSettings(ctx)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	teeOff, err := b.TeeOffAt(now.Location())
	if err != nil {
		return fmt.Errorf("%w: invalid start time on booking %d: %v", ErrInternal, b.ID, err)
	}

	deadline := teeOff.Add(-time.Duration(cfg.CancellationNoticeHours) * time.Hour)
	if now.After(deadline) {
		return fmt.Errorf("%w: requires %d hours notice before tee-off",
			ErrTooLateToCancel, cfg.CancellationNoticeHours)
	}
	return nil
}

// loadSettings загружает настройки поля, подставляя дефолты,
// если настройки не сконфигурированы
func (s *Service) loadSettings(ctx context.Context) (*domain.CourseSettings, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return domain.DefaultCourseSettings(), nil
		}
		return nil, fmt.Errorf("%w: load course settings: %v", ErrInternal, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, nil
}

// notifyCancellation отправляет возврат средств и уведомление об отмене.
// Выполняется в отдельной goroutine с контекстом, переживающим запрос
func (s *Service) notifyCancellation(ctx context.Context, b *domain.Booking, reason string) {
	detached := context.WithoutCancel(ctx)

	go func() {
		if b.PaymentStatus == domain.PaymentPaid {
			s.payments.RequestRefundFireAndForget(detached, &payments.RefundRequest{
				BookingID: b.ID,
				Reason:    reason,
			})
		}

		s.notifications.SendFireAndForget(detached, &notifications.Event{
			Type:      notifications.EventBookingCancelled,
			BookingID: b.ID,
			UserID:    b.UserID,
			Payload: map[string]interface{}{
				"booking_date": b.BookingDate.Format(domain.DateFormat),
				"start_time":   b.StartTime.String(),
				"reason":       reason,
			},
		})
	}()
}

// wrapStorageError мапит временные ошибки хранилища на ErrStorageUnavailable,
// остальные - на ErrInternal
func (s *Service) wrapStorageError(op string, err error) error {
	if errors.Is(err, booking.ErrStorageUnavailable) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
