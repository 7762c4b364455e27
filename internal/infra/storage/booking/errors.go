package booking

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда условная вставка проиграла гонку за слот:
	// подтверждённое бронирование на эту пару (дата, время) уже существует
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrNotTransitionable возвращается, когда статус бронирования
	// уже не позволяет запрошенный переход
	ErrNotTransitionable = errors.New("booking.repository: booking status does not allow transition")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrStorageUnavailable возвращается при таймауте или недоступности БД
	// Вызывающая сторона может повторить запрос
	ErrStorageUnavailable = errors.New("booking.repository: storage unavailable")
)

// wrapExecError классифицирует ошибку выполнения запроса:
// таймауты и отмена контекста считаются временными (ErrStorageUnavailable),
// остальное - ErrExecQuery
func wrapExecError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
