package condition

import "errors"

var (
	// ErrConditionNotFound возвращается, когда override на дату не задан
	// Отсутствие записи означает, что поле открыто в обычном режиме
	ErrConditionNotFound = errors.New("condition.repository: course condition not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("condition.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("condition.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("condition.repository: failed to scan row")
)
