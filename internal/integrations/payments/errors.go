package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrServiceDegraded возвращается при недоступности платёжного сервиса
	// Бронирование при этом остаётся подтверждённым со статусом оплаты pending
	ErrServiceDegraded = errors.New("payments service unavailable: graceful degradation applied")
)
