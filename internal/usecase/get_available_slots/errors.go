package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrConfiguration возвращается при некорректных настройках поля
	// Это ошибка конфигурации, а не пользовательского ввода
	ErrConfiguration = errors.New("get_available_slots: invalid course configuration")

	// ErrStorageUnavailable возвращается при временной недоступности хранилища
	ErrStorageUnavailable = errors.New("get_available_slots: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
