package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/GCS-TeeTimeService/pkg/psqlbuilder"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"guest_name",
	"guest_phone",
	"booking_date",
	"start_time",
	"player_count",
	"fee_type",
	"cart_rental",
	"green_fee",
	"cart_fee",
	"total_amount",
	"status",
	"payment_status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertIfSlotFree атомарно создает подтверждённое бронирование, если слот свободен.
//
// Единственность подтверждённого бронирования на пару (booking_date, start_time)
// обеспечивает частичный уникальный индекс uq_bookings_slot на стороне БД.
// ON CONFLICT DO NOTHING + RETURNING: если вставка не вернула строку, значит
// другое бронирование выиграло гонку - возвращаем ErrSlotTaken.
//
// Это единственная точка взаимного исключения между конкурентными запросами
// на один слот; предварительная проверка доступности в usecase носит
// рекомендательный характер.
func (r *Repository) InsertIfSlotFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"guest_name",
			"guest_phone",
			"booking_date",
			"start_time",
			"player_count",
			"fee_type",
			"cart_rental",
			"green_fee",
			"cart_fee",
			"total_amount",
			"status",
			"payment_status",
		).
		Values(
			booking.UserID,
			booking.GuestName,
			booking.GuestPhone,
			booking.BookingDate,
			booking.StartTime,
			booking.PlayerCount,
			booking.FeeType,
			booking.CartRental,
			booking.GreenFee,
			booking.CartFee,
			booking.TotalAmount,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("ON CONFLICT (booking_date, start_time) WHERE status = 'confirmed' DO NOTHING").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: InsertIfSlotFree - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		// Вставка отклонена индексом - слот уже занят
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, wrapExecError("InsertIfSlotFree - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - используется при отмене
	// и смене статуса, чтобы конкурентные переходы не перетирали друг друга
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapExecError("GetByID - scan booking", err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetByUserID - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDate получает бронирования на день с фильтрацией
// Сортировка по времени начала (ASC) - порядок листа дня
func (r *Repository) GetByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": filter.Date}).
		OrderBy("start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetByDate - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetConfirmedStartTimes получает времена всех подтверждённых бронирований на дату
// Лёгкое чтение для расчёта доступности слотов
func (r *Repository) GetConfirmedStartTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("GetConfirmedStartTimes - execute query", err)
	}
	defer rows.Close()

	startTimes := make([]types.TimeString, 0)
	for rows.Next() {
		var ts types.TimeString
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("%w: GetConfirmedStartTimes - scan start_time: %v", ErrScanRow, err)
		}
		startTimes = append(startTimes, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedStartTimes - rows error: %v", ErrScanRow, err)
	}

	return startTimes, nil
}

// UpdateStatus переводит подтверждённое бронирование в новый статус.
// Условие status = 'confirmed' в WHERE закрывает гонку конкурентных переходов:
// проигравший получает ErrNotTransitionable.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет подтверждённое бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, "Cancel", query, args)
}

// UpdateDetails обновляет изменяемые поля бронирования вместе с пересчитанной
// ценой. Доступно только пока бронирование подтверждено.
func (r *Repository) UpdateDetails(ctx context.Context, id int64, playerCount int, cartRental bool, greenFee, cartFee, totalAmount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("player_count", playerCount).
		Set("cart_rental", cartRental).
		Set("green_fee", greenFee).
		Set("cart_fee", cartFee).
		Set("total_amount", totalAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, "UpdateDetails", query, args)
}

// UpdatePaymentStatus обновляет платёжный статус бронирования
// Платёжный статус не зависит от статуса бронирования
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError("UpdatePaymentStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// execGuarded выполняет update с guard-условием status = 'confirmed'
// 0 затронутых строк означает, что бронирование не найдено либо уже в терминальном статусе
func (r *Repository) execGuarded(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(op+" - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrNotTransitionable
	}

	return nil
}

// scanBooking сканирует одну строку в бронирование
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.GuestName,
		&booking.GuestPhone,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.PlayerCount,
		&booking.FeeType,
		&booking.CartRental,
		&booking.GreenFee,
		&booking.CartFee,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.GuestName,
			&booking.GuestPhone,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.PlayerCount,
			&booking.FeeType,
			&booking.CartRental,
			&booking.GreenFee,
			&booking.CartFee,
			&booking.TotalAmount,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
