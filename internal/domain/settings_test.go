package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseSettings_Validate(t *testing.T) {
	valid := DefaultCourseSettings()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(s *CourseSettings)
	}{
		{"open after close", func(s *CourseSettings) { s.OpenTime = "20:00" }},
		{"open equals close", func(s *CourseSettings) { s.OpenTime = s.CloseTime }},
		{"bad open time", func(s *CourseSettings) { s.OpenTime = "7am" }},
		{"interval too small", func(s *CourseSettings) { s.SlotIntervalMinutes = 1 }},
		{"interval too large", func(s *CourseSettings) { s.SlotIntervalMinutes = 120 }},
		{"negative rate", func(s *CourseSettings) { s.NineHoleRate = -1 }},
		{"guest days zero", func(s *CourseSettings) { s.GuestAdvanceDays = 0 }},
		{"member window below guest", func(s *CourseSettings) { s.MemberAdvanceDays = s.GuestAdvanceDays - 1 }},
		{"notice hours over max", func(s *CourseSettings) { s.CancellationNoticeHours = 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultCourseSettings()
			tt.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestCourseSettings_AdvanceDaysFor(t *testing.T) {
	s := DefaultCourseSettings()

	assert.Equal(t, DefaultGuestAdvanceDays, s.AdvanceDaysFor(false))
	assert.Equal(t, DefaultMemberAdvanceDays, s.AdvanceDaysFor(true))
}

func TestCourseSettings_GreenFeeRate(t *testing.T) {
	s := DefaultCourseSettings()

	assert.Equal(t, DefaultNineHoleRate, s.GreenFeeRate(FeeNineHoles))
	assert.Equal(t, DefaultAllDayRate, s.GreenFeeRate(FeeAllDay))
}

func TestCourseCondition_BlocksPlay(t *testing.T) {
	closed := &CourseCondition{OverallCondition: ConditionClosed, HolesAvailable: 9}
	assert.True(t, closed.BlocksPlay())

	noHoles := &CourseCondition{OverallCondition: ConditionPoor, HolesAvailable: 0}
	assert.True(t, noHoles.BlocksPlay())

	open := &CourseCondition{OverallCondition: ConditionFair, HolesAvailable: 5}
	assert.False(t, open.BlocksPlay())
}

func TestMembership_IsActiveOn(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	active := &Membership{
		Status:  MembershipActive,
		EndDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, active.IsActiveOn(today))

	// Последний день членства ещё действителен
	lastDay := &Membership{
		Status:  MembershipActive,
		EndDate: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, lastDay.IsActiveOn(today))

	expired := &Membership{
		Status:  MembershipActive,
		EndDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, expired.IsActiveOn(today))

	cancelled := &Membership{
		Status:  MembershipCancelled,
		EndDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.False(t, cancelled.IsActiveOn(today))
}
