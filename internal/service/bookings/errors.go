package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у вызывающего нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда статус бронирования терминальный
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrTooLateToCancel возвращается, когда до ти-тайма осталось меньше
	// настроенного окна отмены
	ErrTooLateToCancel = errors.New("too late to cancel this booking")

	// ErrCannotUpdate возвращается, когда бронирование нельзя изменить
	ErrCannotUpdate = errors.New("booking cannot be updated")

	// ErrInvalidStatus возвращается при недопустимом переходе статуса
	ErrInvalidStatus = errors.New("invalid booking status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConfiguration возвращается при некорректных настройках поля
	ErrConfiguration = errors.New("service: invalid course configuration")

	// ErrStorageUnavailable возвращается при временной недоступности хранилища
	ErrStorageUnavailable = errors.New("service: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
