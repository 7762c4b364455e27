package get_available_slots

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
)

// Request модель запроса на получение слотов ти-таймов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time               // Дата, на которую запрашивались слоты
	Condition       domain.OverallCondition // Состояние поля на дату
	HolesAvailable  int                     // Количество доступных лунок
	IntervalMinutes int                     // Шаг сетки слотов
	Slots           []domain.TeeSlot        // Слоты в порядке возрастания времени
}
