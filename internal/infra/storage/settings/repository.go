package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/GCS-TeeTimeService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var settingsColumns = []string{
	"id",
	"open_time",
	"close_time",
	"slot_interval_minutes",
	"nine_hole_rate",
	"all_day_rate",
	"cart_rental_rate",
	"guest_advance_days",
	"member_advance_days",
	"cancellation_notice_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с настройками поля
// Настройки хранятся одной строкой; отсутствие строки означает дефолтные значения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущие настройки поля
func (r *Repository) Get(ctx context.Context) (*domain.CourseSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("course_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.CourseSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OpenTime,
		&s.CloseTime,
		&s.SlotIntervalMinutes,
		&s.NineHoleRate,
		&s.AllDayRate,
		&s.CartRentalRate,
		&s.GuestAdvanceDays,
		&s.MemberAdvanceDays,
		&s.CancellationNoticeHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет настройки поля
// Единственность строки обеспечивает уникальный индекс на singleton-колонке
func (r *Repository) Upsert(ctx context.Context, s *domain.CourseSettings) (*domain.CourseSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("course_settings").
		Columns(
			"singleton",
			"open_time",
			"close_time",
			"slot_interval_minutes",
			"nine_hole_rate",
			"all_day_rate",
			"cart_rental_rate",
			"guest_advance_days",
			"member_advance_days",
			"cancellation_notice_hours",
		).
		Values(
			true,
			s.OpenTime,
			s.CloseTime,
			s.SlotIntervalMinutes,
			s.NineHoleRate,
			s.AllDayRate,
			s.CartRentalRate,
			s.GuestAdvanceDays,
			s.MemberAdvanceDays,
			s.CancellationNoticeHours,
		).
		Suffix(`ON CONFLICT (singleton) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			nine_hole_rate = EXCLUDED.nine_hole_rate,
			all_day_rate = EXCLUDED.all_day_rate,
			cart_rental_rate = EXCLUDED.cart_rental_rate,
			guest_advance_days = EXCLUDED.guest_advance_days,
			member_advance_days = EXCLUDED.member_advance_days,
			cancellation_notice_hours = EXCLUDED.cancellation_notice_hours,
			updated_at = NOW()`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
