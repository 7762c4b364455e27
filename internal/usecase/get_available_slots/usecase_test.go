package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	bookingRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	conditionRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	settingsRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

type fakeBookingRepo struct {
	confirmedTimes []types.TimeString
	err            error
}

func (f *fakeBookingRepo) GetConfirmedStartTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.confirmedTimes, f.err
}

type fakeSettingsRepo struct {
	settings *domain.CourseSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.CourseSettings, error) {
	return f.settings, f.err
}

type fakeConditionRepo struct {
	condition *domain.CourseCondition
	err       error
}

func (f *fakeConditionRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CourseCondition, error) {
	return f.condition, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(b *fakeBookingRepo, s *fakeSettingsRepo, c *fakeConditionRepo) *UseCase {
	if b == nil {
		b = &fakeBookingRepo{}
	}
	if s == nil {
		s = &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}
	}
	if c == nil {
		c = &fakeConditionRepo{err: conditionRepo.ErrConditionNotFound}
	}
	return NewUseCase(b, s, c, nopLogger{})
}

func TestExecute_DefaultSettings(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Дефолтное окно 07:00-19:00 с шагом 15 минут = 48 слотов
	assert.Len(t, resp.Slots, 48)
	assert.Equal(t, 15, resp.IntervalMinutes)
	assert.Equal(t, domain.ConditionGood, resp.Condition)
	assert.Equal(t, domain.MaxHolesAvailable, resp.HolesAvailable)

	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestExecute_BookedSlotUnavailable(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{confirmedTimes: []types.TimeString{"09:00"}},
		nil, nil,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	unavailable := 0
	for _, s := range resp.Slots {
		if !s.Available {
			unavailable++
			assert.Equal(t, types.TimeString("09:00"), s.StartTime)
			assert.Equal(t, domain.ReasonBooked, s.Reason)
		}
	}
	assert.Equal(t, 1, unavailable)
}

func TestExecute_ClosedCourse(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{confirmedTimes: []types.TimeString{"09:00"}},
		nil,
		&fakeConditionRepo{condition: &domain.CourseCondition{
			OverallCondition: domain.ConditionClosed,
			HolesAvailable:   9,
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ConditionClosed, resp.Condition)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
		assert.Equal(t, domain.ReasonCourseClosed, s.Reason)
	}
}

func TestExecute_PastDateStillComputed(t *testing.T) {
	// Запрос на прошедшую дату - не ошибка: расчёт остаётся чистой функцией
	uc := newTestUseCase(nil, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 48)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidSettings(t *testing.T) {
	bad := domain.DefaultCourseSettings()
	bad.OpenTime = "20:00" // открытие позже закрытия

	uc := newTestUseCase(nil, &fakeSettingsRepo{settings: bad}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestExecute_StorageUnavailable(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{err: bookingRepo.ErrStorageUnavailable},
		nil, nil,
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestExecute_ConditionLookupFailure(t *testing.T) {
	uc := newTestUseCase(nil, nil, &fakeConditionRepo{err: errors.New("boom")})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
