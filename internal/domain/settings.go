package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

// CourseSettings is the course-wide booking configuration.
// It is loaded as a snapshot at the start of each calculation and passed
// explicitly; a change never retroactively alters confirmed bookings.
type CourseSettings struct {
	ID                  int64
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotIntervalMinutes int

	NineHoleRate   float64 // per player
	AllDayRate     float64 // per player
	CartRentalRate float64 // per booking

	GuestAdvanceDays        int
	MemberAdvanceDays       int
	CancellationNoticeHours int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the structural invariants of the settings row.
// A violation is a configuration fault, not a user input problem.
func (s *CourseSettings) Validate() error {
	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("open time: %v", err)
	}
	if err := s.CloseTime.Validate(); err != nil {
		return fmt.Errorf("close time: %v", err)
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", s.OpenTime, s.CloseTime)
	}
	if s.SlotIntervalMinutes < MinSlotIntervalMinutes || s.SlotIntervalMinutes > MaxSlotIntervalMinutes {
		return fmt.Errorf("slot interval %d out of range [%d, %d]",
			s.SlotIntervalMinutes, MinSlotIntervalMinutes, MaxSlotIntervalMinutes)
	}
	if s.NineHoleRate < 0 || s.AllDayRate < 0 || s.CartRentalRate < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	if s.GuestAdvanceDays < MinAdvanceDays || s.GuestAdvanceDays > MaxAdvanceDays {
		return fmt.Errorf("guest advance days %d out of range [%d, %d]",
			s.GuestAdvanceDays, MinAdvanceDays, MaxAdvanceDays)
	}
	if s.MemberAdvanceDays < s.GuestAdvanceDays || s.MemberAdvanceDays > MaxAdvanceDays {
		return fmt.Errorf("member advance days %d must be in [%d, %d]",
			s.MemberAdvanceDays, s.GuestAdvanceDays, MaxAdvanceDays)
	}
	if s.CancellationNoticeHours < MinCancellationNoticeHours || s.CancellationNoticeHours > MaxCancellationNoticeHours {
		return fmt.Errorf("cancellation notice hours %d out of range [%d, %d]",
			s.CancellationNoticeHours, MinCancellationNoticeHours, MaxCancellationNoticeHours)
	}
	return nil
}

// AdvanceDaysFor returns the advance-booking window for the caller class
func (s *CourseSettings) AdvanceDaysFor(isMember bool) int {
	if isMember {
		return s.MemberAdvanceDays
	}
	return s.GuestAdvanceDays
}

// GreenFeeRate returns the per-player rate for the given fee type
func (s *CourseSettings) GreenFeeRate(feeType FeeType) float64 {
	if feeType == FeeAllDay {
		return s.AllDayRate
	}
	return s.NineHoleRate
}

// DefaultCourseSettings returns the settings used when no row is configured
func DefaultCourseSettings() *CourseSettings {
	return &CourseSettings{
		OpenTime:                types.TimeString(DefaultOpenTime),
		CloseTime:               types.TimeString(DefaultCloseTime),
		SlotIntervalMinutes:     DefaultSlotIntervalMinutes,
		NineHoleRate:            DefaultNineHoleRate,
		AllDayRate:              DefaultAllDayRate,
		CartRentalRate:          DefaultCartRentalRate,
		GuestAdvanceDays:        DefaultGuestAdvanceDays,
		MemberAdvanceDays:       DefaultMemberAdvanceDays,
		CancellationNoticeHours: DefaultCancellationNoticeHours,
	}
}
