package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	storage "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	"github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/bookings/models"
	"github.com/m04kA/GCS-TeeTimeService/pkg/ptr"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// testNow фиксированный момент "сейчас": за 48 часов до ти-тайма 2026-08-31 09:15
var testNow = time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

// fakeRepo хранит бронирования в памяти и повторяет guard-семантику
// настоящего репозитория: переходы только из confirmed
type fakeRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m}
}

func (f *fakeRepo) get(id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.get(id)
	if err != nil {
		return nil, err
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == nil || *b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) GetByDate(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*domain.Booking
	for _, b := range f.bookings {
		if !b.BookingDate.Equal(filter.Date) {
			continue
		}
		if !filter.IncludeInactive && b.Status != domain.StatusConfirmed {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.get(id)
	if err != nil {
		return err
	}
	if b.Status != domain.StatusConfirmed {
		return storage.ErrNotTransitionable
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.get(id)
	if err != nil {
		return err
	}
	if b.Status != domain.StatusConfirmed {
		return storage.ErrNotTransitionable
	}
	b.Status = domain.StatusCancelled
	if reason != "" {
		b.CancellationReason = &reason
	}
	cancelledAt := testNow
	b.CancelledAt = &cancelledAt
	return nil
}

func (f *fakeRepo) UpdateDetails(_ context.Context, id int64, playerCount int, cartRental bool, greenFee, cartFee, totalAmount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.get(id)
	if err != nil {
		return err
	}
	if b.Status != domain.StatusConfirmed {
		return storage.ErrNotTransitionable
	}
	b.PlayerCount = playerCount
	b.CartRental = cartRental
	b.GreenFee = greenFee
	b.CartFee = cartFee
	b.TotalAmount = totalAmount
	return nil
}

func (f *fakeRepo) UpdatePaymentStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := f.get(id)
	if err != nil {
		return err
	}
	b.PaymentStatus = status
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.CourseSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.CourseSettings, error) {
	return f.settings, f.err
}

// passthroughTxManager выполняет fn без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePaymentsClient struct {
	mu      sync.Mutex
	refunds []*payments.RefundRequest
	done    chan struct{}
}

func newFakePaymentsClient() *fakePaymentsClient {
	return &fakePaymentsClient{done: make(chan struct{}, 1)}
}

func (f *fakePaymentsClient) RequestRefundFireAndForget(_ context.Context, req *payments.RefundRequest) {
	f.mu.Lock()
	f.refunds = append(f.refunds, req)
	f.mu.Unlock()
	f.done <- struct{}{}
}

type fakeNotificationsClient struct {
	mu     sync.Mutex
	events []*notifications.Event
	done   chan struct{}
}

func newFakeNotificationsClient() *fakeNotificationsClient {
	return &fakeNotificationsClient{done: make(chan struct{}, 1)}
}

func (f *fakeNotificationsClient) SendFireAndForget(_ context.Context, event *notifications.Event) {
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
	f.done <- struct{}{}
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		UserID:        &userID,
		BookingDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("09:15"),
		PlayerCount:   2,
		FeeType:       domain.FeeNineHoles,
		GreenFee:      50,
		TotalAmount:   50,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPending,
	}
}

type serviceFixture struct {
	svc      *Service
	repo     *fakeRepo
	payments *fakePaymentsClient
	notify   *fakeNotificationsClient
}

func newServiceFixture(bookings ...*domain.Booking) *serviceFixture {
	f := &serviceFixture{
		repo:     newFakeRepo(bookings...),
		payments: newFakePaymentsClient(),
		notify:   newFakeNotificationsClient(),
	}
	f.svc = NewService(
		f.repo,
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		passthroughTxManager{},
		f.payments,
		f.notify,
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)
	return f
}

func owner() access.Actor { return access.Actor{UserID: 42} }
func staff() access.Actor { return access.Actor{UserID: 7, Role: access.RoleStaff} }

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("collaborator was not notified")
	}
}

func TestGetByID_Access(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	// Владелец видит своё бронирование
	resp, err := f.svc.GetByID(context.Background(), 1, owner())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Чужой пользователь - нет
	_, err = f.svc.GetByID(context.Background(), 1, access.Actor{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Персонал видит любое
	_, err = f.svc.GetByID(context.Background(), 1, staff())
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), 404, owner())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_GuestBookingStaffOnly(t *testing.T) {
	guest := confirmedBooking(1, 0)
	guest.UserID = nil
	guest.GuestName = ptr.Ptr("Walk-in Player")

	f := newServiceFixture(guest)

	_, err := f.svc.GetByID(context.Background(), 1, owner())
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(context.Background(), 1, staff())
	require.NoError(t, err)
}

func TestCancel_OwnerWithinWindow(t *testing.T) {
	// До ти-тайма 48 часов, окно отмены 24 часа - можно
	f := newServiceFixture(confirmedBooking(1, 42))

	resp, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{
		Actor:  owner(),
		Reason: "изменились планы",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "изменились планы", *resp.CancellationReason)

	waitFor(t, f.notify.done)
	f.notify.mu.Lock()
	require.Len(t, f.notify.events, 1)
	assert.Equal(t, notifications.EventBookingCancelled, f.notify.events[0].Type)
	f.notify.mu.Unlock()

	// Возврата нет: бронирование не было оплачено
	f.payments.mu.Lock()
	assert.Empty(t, f.payments.refunds)
	f.payments.mu.Unlock()
}

func TestCancel_DeadlineBoundary(t *testing.T) {
	// Ти-тайм 2026-08-31 09:15, окно отмены 24 часа:
	// дедлайн - 2026-08-30 09:15 включительно
	makeFixture := func(now time.Time) *serviceFixture {
		f := newServiceFixture(confirmedBooking(1, 42))
		f.svc.timeProvider = &fixedTimeProvider{now: now}
		return f
	}

	// Ровно на границе - ещё можно
	f := makeFixture(time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC))
	_, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: owner()})
	require.NoError(t, err)

	// Минутой позже - уже нельзя
	f = makeFixture(time.Date(2026, 8, 30, 9, 16, 0, 0, time.UTC))
	_, err = f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: owner()})
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestCancel_StaffIgnoresDeadline(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))
	// За час до ти-тайма
	f.svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 31, 8, 15, 0, 0, time.UTC)}

	_, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: staff()})
	require.NoError(t, err)
}

func TestCancel_PaidBookingTriggersRefund(t *testing.T) {
	paid := confirmedBooking(1, 42)
	paid.PaymentStatus = domain.PaymentPaid

	f := newServiceFixture(paid)

	_, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{
		Actor:  owner(),
		Reason: "rain check",
	})
	require.NoError(t, err)

	waitFor(t, f.payments.done)
	f.payments.mu.Lock()
	require.Len(t, f.payments.refunds, 1)
	assert.Equal(t, int64(1), f.payments.refunds[0].BookingID)
	f.payments.mu.Unlock()
}

func TestCancel_TerminalStatus(t *testing.T) {
	done := confirmedBooking(1, 42)
	done.Status = domain.StatusCompleted

	f := newServiceFixture(done)

	_, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: owner()})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessDenied(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	_, err := f.svc.Cancel(context.Background(), 1, models.CancelBookingRequest{
		Actor: access.Actor{UserID: 99},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	// Не персонал - запрещено
	_, err := f.svc.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{
		Actor:  owner(),
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Отмена через статусный endpoint не проходит
	_, err = f.svc.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{
		Actor:  staff(),
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Неизвестный статус
	_, err = f.svc.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{
		Actor:  staff(),
		Status: "teleported",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Персонал завершает бронирование
	resp, err := f.svc.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{
		Actor:  staff(),
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)

	// Повторный переход из терминального статуса невозможен
	_, err = f.svc.UpdateStatus(context.Background(), 1, models.UpdateStatusRequest{
		Actor:  staff(),
		Status: "no_show",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateDetails_Reprices(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	resp, err := f.svc.UpdateDetails(context.Background(), 1, models.UpdateDetailsRequest{
		Actor:       owner(),
		PlayerCount: ptr.Ptr(4),
		CartRental:  ptr.Ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.PlayerCount)
	assert.True(t, resp.CartRental)
	assert.Equal(t, 100.0, resp.GreenFee) // 25 x 4 по дефолтным тарифам
	assert.Equal(t, 15.0, resp.CartFee)
	assert.Equal(t, 115.0, resp.TotalAmount)
}

func TestUpdateDetails_Validation(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	_, err := f.svc.UpdateDetails(context.Background(), 1, models.UpdateDetailsRequest{Actor: owner()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateDetails(context.Background(), 1, models.UpdateDetailsRequest{
		Actor:       owner(),
		PlayerCount: ptr.Ptr(5),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDetails_DeadlineApplies(t *testing.T) {
	// Изменение подчиняется тому же окну, что и отмена
	f := newServiceFixture(confirmedBooking(1, 42))
	f.svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)}

	_, err := f.svc.UpdateDetails(context.Background(), 1, models.UpdateDetailsRequest{
		Actor:       owner(),
		PlayerCount: ptr.Ptr(3),
	})
	assert.ErrorIs(t, err, ErrTooLateToCancel)

	// Персонал может изменить в любой момент
	_, err = f.svc.UpdateDetails(context.Background(), 1, models.UpdateDetailsRequest{
		Actor:       staff(),
		PlayerCount: ptr.Ptr(3),
	})
	require.NoError(t, err)
}

func TestGetDaySheet_StaffOnly(t *testing.T) {
	cancelled := confirmedBooking(2, 43)
	cancelled.Status = domain.StatusCancelled

	f := newServiceFixture(confirmedBooking(1, 42), cancelled)

	_, err := f.svc.GetDaySheet(context.Background(), models.GetDaySheetRequest{
		Actor: owner(),
		Date:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// По умолчанию только активные
	resp, err := f.svc.GetDaySheet(context.Background(), models.GetDaySheetRequest{
		Actor: staff(),
		Date:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	// С неактивными
	resp, err = f.svc.GetDaySheet(context.Background(), models.GetDaySheetRequest{
		Actor:           staff(),
		Date:            time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetUserBookings_Access(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	resp, err := f.svc.GetUserBookings(context.Background(), models.GetUserBookingsRequest{
		Actor:  owner(),
		UserID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = f.svc.GetUserBookings(context.Background(), models.GetUserBookingsRequest{
		Actor:  access.Actor{UserID: 99},
		UserID: 42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetUserBookings(context.Background(), models.GetUserBookingsRequest{
		Actor:  owner(),
		UserID: 42,
		Status: ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandlePaymentEvent(t *testing.T) {
	f := newServiceFixture(confirmedBooking(1, 42))

	require.NoError(t, f.svc.HandlePaymentEvent(context.Background(), models.PaymentEventRequest{
		BookingID: 1,
		Outcome:   "succeeded",
	}))

	resp, err := f.svc.GetByID(context.Background(), 1, staff())
	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)

	// Неудачный платёж не меняет статус бронирования
	require.NoError(t, f.svc.HandlePaymentEvent(context.Background(), models.PaymentEventRequest{
		BookingID: 1,
		Outcome:   "failed",
	}))
	resp, err = f.svc.GetByID(context.Background(), 1, staff())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentFailed), resp.PaymentStatus)

	assert.ErrorIs(t, f.svc.HandlePaymentEvent(context.Background(), models.PaymentEventRequest{
		BookingID: 1,
		Outcome:   "teleported",
	}), ErrInvalidInput)

	assert.ErrorIs(t, f.svc.HandlePaymentEvent(context.Background(), models.PaymentEventRequest{
		BookingID: 404,
		Outcome:   "succeeded",
	}), ErrBookingNotFound)
}
