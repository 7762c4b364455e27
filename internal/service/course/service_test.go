package course

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
	"github.com/m04kA/GCS-TeeTimeService/pkg/ptr"
)

type fakeSettingsRepo struct {
	settings *domain.CourseSettings
	getErr   error
	upserted *domain.CourseSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.CourseSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *domain.CourseSettings) (*domain.CourseSettings, error) {
	f.upserted = s
	return s, nil
}

type fakeConditionRepo struct {
	condition *domain.CourseCondition
	getErr    error
	deleteErr error
	upserted  *domain.CourseCondition
	deleted   *time.Time
}

func (f *fakeConditionRepo) GetByDate(_ context.Context, date time.Time) (*domain.CourseCondition, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.condition, nil
}

func (f *fakeConditionRepo) Upsert(_ context.Context, c *domain.CourseCondition) (*domain.CourseCondition, error) {
	f.upserted = c
	return c, nil
}

func (f *fakeConditionRepo) Delete(_ context.Context, date time.Time) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = &date
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func staff() access.Actor { return access.Actor{UserID: 7, Role: access.RoleStaff} }

var testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestGetSettings_DefaultsWhenUnconfigured(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: settings.ErrSettingsNotFound}, &fakeConditionRepo{}, nopLogger{})

	resp, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOpenTime, resp.OpenTime)
	assert.Equal(t, domain.DefaultNineHoleRate, resp.NineHoleRate)
	assert.Equal(t, domain.DefaultCancellationNoticeHours, resp.CancellationNoticeHours)
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: settings.ErrSettingsNotFound}
	svc := NewService(repo, &fakeConditionRepo{}, nopLogger{})

	resp, err := svc.UpdateSettings(context.Background(), models.UpdateSettingsRequest{
		Actor:        staff(),
		NineHoleRate: ptr.Ptr(30.0),
	})
	require.NoError(t, err)

	// Изменённое поле применено, остальные остались дефолтными
	assert.Equal(t, 30.0, resp.NineHoleRate)
	assert.Equal(t, domain.DefaultOpenTime, resp.OpenTime)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 30.0, repo.upserted.NineHoleRate)
}

func TestUpdateSettings_Validation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: settings.ErrSettingsNotFound}, &fakeConditionRepo{}, nopLogger{})

	_, err := svc.UpdateSettings(context.Background(), models.UpdateSettingsRequest{
		Actor:        staff(),
		NineHoleRate: ptr.Ptr(-1.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSettings(context.Background(), models.UpdateSettingsRequest{
		Actor:    staff(),
		OpenTime: ptr.Ptr("25:99"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateSettings(context.Background(), models.UpdateSettingsRequest{
		Actor: access.Actor{UserID: 42},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetCondition(t *testing.T) {
	repo := &fakeConditionRepo{condition: &domain.CourseCondition{
		Date:             testDate,
		OverallCondition: domain.ConditionFair,
		HolesAvailable:   6,
	}}
	svc := NewService(&fakeSettingsRepo{}, repo, nopLogger{})

	resp, err := svc.GetCondition(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ConditionFair), resp.OverallCondition)
	assert.Equal(t, 6, resp.HolesAvailable)

	repo.getErr = condition.ErrConditionNotFound
	_, err = svc.GetCondition(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrConditionNotFound)
}

func TestSetCondition(t *testing.T) {
	repo := &fakeConditionRepo{}
	svc := NewService(&fakeSettingsRepo{}, repo, nopLogger{})

	resp, err := svc.SetCondition(context.Background(), models.SetConditionRequest{
		Actor:            staff(),
		Date:             testDate,
		OverallCondition: "closed",
		HolesAvailable:   0,
		Notes:            ptr.Ptr("аэрация гринов"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ConditionClosed), resp.OverallCondition)
	require.NotNil(t, repo.upserted)
	assert.True(t, repo.upserted.BlocksPlay())

	_, err = svc.SetCondition(context.Background(), models.SetConditionRequest{
		Actor:            staff(),
		Date:             testDate,
		OverallCondition: "muddy",
		HolesAvailable:   9,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetCondition(context.Background(), models.SetConditionRequest{
		Actor:            staff(),
		Date:             testDate,
		OverallCondition: "good",
		HolesAvailable:   10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetCondition(context.Background(), models.SetConditionRequest{
		Actor:            access.Actor{UserID: 42},
		Date:             testDate,
		OverallCondition: "good",
		HolesAvailable:   9,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestClearCondition(t *testing.T) {
	repo := &fakeConditionRepo{}
	svc := NewService(&fakeSettingsRepo{}, repo, nopLogger{})

	require.NoError(t, svc.ClearCondition(context.Background(), models.ClearConditionRequest{
		Actor: staff(),
		Date:  testDate,
	}))
	require.NotNil(t, repo.deleted)
	assert.True(t, repo.deleted.Equal(testDate))

	repo.deleteErr = condition.ErrConditionNotFound
	err := svc.ClearCondition(context.Background(), models.ClearConditionRequest{
		Actor: staff(),
		Date:  testDate,
	})
	assert.ErrorIs(t, err, ErrConditionNotFound)

	err = svc.ClearCondition(context.Background(), models.ClearConditionRequest{
		Actor: access.Actor{UserID: 42},
		Date:  testDate,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
