package course

import "errors"

var (
	// ErrAccessDenied возвращается, когда у вызывающего нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConditionNotFound возвращается, когда override на дату не задан
	ErrConditionNotFound = errors.New("course condition not found")

	// ErrStorageUnavailable возвращается при временной недоступности хранилища
	ErrStorageUnavailable = errors.New("course service: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("course service: internal error")
)
