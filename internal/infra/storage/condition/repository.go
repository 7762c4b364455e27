package condition

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/GCS-TeeTimeService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с состоянием поля по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория состояния поля
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает override состояния поля на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CourseCondition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"condition_date",
		"overall_condition",
		"holes_available",
		"notes",
		"created_at",
		"updated_at",
	).
		From("course_conditions").
		Where(squirrel.Eq{"condition_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.CourseCondition
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Date,
		&c.OverallCondition,
		&c.HolesAvailable,
		&c.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConditionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan condition: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// Upsert создает или обновляет override состояния поля на дату
func (r *Repository) Upsert(ctx context.Context, c *domain.CourseCondition) (*domain.CourseCondition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("course_conditions").
		Columns(
			"condition_date",
			"overall_condition",
			"holes_available",
			"notes",
		).
		Values(
			c.Date,
			c.OverallCondition,
			c.HolesAvailable,
			c.Notes,
		).
		Suffix(`ON CONFLICT (condition_date) DO UPDATE SET
			overall_condition = EXCLUDED.overall_condition,
			holes_available = EXCLUDED.holes_available,
			notes = EXCLUDED.notes,
			updated_at = NOW()`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// Delete удаляет override на дату, возвращая поле к обычному режиму
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("course_conditions").
		Where(squirrel.Eq{"condition_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConditionNotFound
	}

	return nil
}
