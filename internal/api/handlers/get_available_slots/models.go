package get_available_slots

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	getAvailableSlots "github.com/m04kA/GCS-TeeTimeService/internal/usecase/get_available_slots"
)

// TeeTimesResponse HTTP response model
type TeeTimesResponse struct {
	Date            string    `json:"date"`
	Condition       string    `json:"condition"`
	HolesAvailable  int       `json:"holesAvailable"`
	IntervalMinutes int       `json:"intervalMinutes"`
	Slots           []TeeSlot `json:"slots"`
}

// TeeSlot модель слота ти-тайма
type TeeSlot struct {
	StartTime string  `json:"startTime"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *TeeTimesResponse {
	slots := make([]TeeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		s := TeeSlot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
		if slot.Reason != "" {
			reason := string(slot.Reason)
			s.Reason = &reason
		}
		slots[i] = s
	}

	return &TeeTimesResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Condition:       string(resp.Condition),
		HolesAvailable:  resp.HolesAvailable,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
	}, nil
}
