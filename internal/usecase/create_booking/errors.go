package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotOffGrid возвращается, когда время не попадает на сетку слотов
	ErrSlotOffGrid = errors.New("create_booking: start time is not on the slot grid")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("create_booking: cannot book in the past")

	// ErrAdvanceWindowExceeded возвращается, когда дата превышает окно
	// предварительного бронирования вызывающего (гость или член клуба)
	// Сообщение всегда содержит применённый лимит
	ErrAdvanceWindowExceeded = errors.New("create_booking: exceeds advance booking window")

	// ErrSlotNotAvailable возвращается, когда слот недоступен.
	// Единый ответ для занятого слота, закрытого поля и проигранной гонки
	// вставки - вызывающий не должен различать эти случаи
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrConfiguration возвращается при некорректных настройках поля
	ErrConfiguration = errors.New("create_booking: invalid course configuration")

	// ErrStorageUnavailable возвращается при временной недоступности хранилища
	// Повтор запроса - решение вызывающей стороны
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
