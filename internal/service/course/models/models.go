package models

import (
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/access"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// UpdateSettingsRequest запрос на обновление настроек поля.
// nil-поля сохраняют текущее значение.
type UpdateSettingsRequest struct {
	Actor access.Actor

	OpenTime            *string  `json:"openTime,omitempty"`
	CloseTime           *string  `json:"closeTime,omitempty"`
	SlotIntervalMinutes *int     `json:"slotIntervalMinutes,omitempty"`
	NineHoleRate        *float64 `json:"nineHoleRate,omitempty"`
	AllDayRate          *float64 `json:"allDayRate,omitempty"`
	CartRentalRate      *float64 `json:"cartRentalRate,omitempty"`
	GuestAdvanceDays    *int     `json:"guestAdvanceDays,omitempty"`
	MemberAdvanceDays   *int     `json:"memberAdvanceDays,omitempty"`
	CancellationNotice  *int     `json:"cancellationNoticeHours,omitempty"`
}

// ApplyTo накладывает частичное обновление на снапшот настроек
func (r *UpdateSettingsRequest) ApplyTo(s *domain.CourseSettings) {
	if r.OpenTime != nil {
		s.OpenTime = types.TimeString(*r.OpenTime)
	}
	if r.CloseTime != nil {
		s.CloseTime = types.TimeString(*r.CloseTime)
	}
	if r.SlotIntervalMinutes != nil {
		s.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
	if r.NineHoleRate != nil {
		s.NineHoleRate = *r.NineHoleRate
	}
	if r.AllDayRate != nil {
		s.AllDayRate = *r.AllDayRate
	}
	if r.CartRentalRate != nil {
		s.CartRentalRate = *r.CartRentalRate
	}
	if r.GuestAdvanceDays != nil {
		s.GuestAdvanceDays = *r.GuestAdvanceDays
	}
	if r.MemberAdvanceDays != nil {
		s.MemberAdvanceDays = *r.MemberAdvanceDays
	}
	if r.CancellationNotice != nil {
		s.CancellationNoticeHours = *r.CancellationNotice
	}
}

// SetConditionRequest запрос на установку состояния поля на дату
type SetConditionRequest struct {
	Actor access.Actor
	Date  time.Time

	OverallCondition string  `json:"overallCondition"`
	HolesAvailable   int     `json:"holesAvailable"`
	Notes            *string `json:"notes,omitempty"`
}

// ClearConditionRequest запрос на снятие override'а состояния поля
type ClearConditionRequest struct {
	Actor access.Actor
	Date  time.Time
}

// SettingsResponse представление настроек поля
type SettingsResponse struct {
	OpenTime                string  `json:"openTime"`
	CloseTime               string  `json:"closeTime"`
	SlotIntervalMinutes     int     `json:"slotIntervalMinutes"`
	NineHoleRate            float64 `json:"nineHoleRate"`
	AllDayRate              float64 `json:"allDayRate"`
	CartRentalRate          float64 `json:"cartRentalRate"`
	GuestAdvanceDays        int     `json:"guestAdvanceDays"`
	MemberAdvanceDays       int     `json:"memberAdvanceDays"`
	CancellationNoticeHours int     `json:"cancellationNoticeHours"`
}

// ConditionResponse представление состояния поля на дату
type ConditionResponse struct {
	Date             string  `json:"date"`
	OverallCondition string  `json:"overallCondition"`
	HolesAvailable   int     `json:"holesAvailable"`
	Notes            *string `json:"notes,omitempty"`
}

// FromDomainSettings конвертирует domain.CourseSettings в response-модель
func FromDomainSettings(s *domain.CourseSettings) *SettingsResponse {
	return &SettingsResponse{
		OpenTime:                s.OpenTime.String(),
		CloseTime:               s.CloseTime.String(),
		SlotIntervalMinutes:     s.SlotIntervalMinutes,
		NineHoleRate:            s.NineHoleRate,
		AllDayRate:              s.AllDayRate,
		CartRentalRate:          s.CartRentalRate,
		GuestAdvanceDays:        s.GuestAdvanceDays,
		MemberAdvanceDays:       s.MemberAdvanceDays,
		CancellationNoticeHours: s.CancellationNoticeHours,
	}
}

// FromDomainCondition конвертирует domain.CourseCondition в response-модель
func FromDomainCondition(c *domain.CourseCondition) *ConditionResponse {
	return &ConditionResponse{
		Date:             c.Date.Format(domain.DateFormat),
		OverallCondition: string(c.OverallCondition),
		HolesAvailable:   c.HolesAvailable,
		Notes:            c.Notes,
	}
}
