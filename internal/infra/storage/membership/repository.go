package membership

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

// Repository репозиторий для работы с членствами клуба
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория членств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByUserID получает активное членство пользователя на дату asOf.
// Активным считается членство со статусом active и end_date >= asOf;
// истёкшие и отменённые членства не возвращаются.
func (r *Repository) GetActiveByUserID(ctx context.Context, userID int64, asOf time.Time) (*domain.Membership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"status",
		"start_date",
		"end_date",
		"created_at",
		"updated_at",
	).
		From("memberships").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  domain.MembershipActive,
		}).
		Where(squirrel.GtOrEq{"end_date": asOfDay}).
		OrderBy("end_date DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Membership
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.UserID,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - scan membership: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}
