package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/ptr"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:      ptr.Ptr(int64(42)),
		Date:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:15"),
		PlayerCount: 2,
		FeeType:     domain.FeeNineHoles,
	}
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, validateRequest(validRequest()))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "9am" }},
		{"zero players", func(r *Request) { r.PlayerCount = 0 }},
		{"too many players", func(r *Request) { r.PlayerCount = 5 }},
		{"unknown fee type", func(r *Request) { r.FeeType = "eighteen_holes" }},
		{"guest without name", func(r *Request) { r.UserID = nil }},
		{"guest with empty name", func(r *Request) {
			r.UserID = nil
			r.GuestName = ptr.Ptr("")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateRequest_GuestWithName(t *testing.T) {
	req := validRequest()
	req.UserID = nil
	req.GuestName = ptr.Ptr("Walk-in Player")

	assert.NoError(t, validateRequest(req))
}

func TestValidateSlotOnGrid(t *testing.T) {
	settings := domain.DefaultCourseSettings()

	assert.NoError(t, validateSlotOnGrid("07:00", settings))
	assert.NoError(t, validateSlotOnGrid("09:15", settings))
	assert.NoError(t, validateSlotOnGrid("18:45", settings))

	assert.ErrorIs(t, validateSlotOnGrid("19:00", settings), ErrSlotOffGrid)
	assert.ErrorIs(t, validateSlotOnGrid("06:45", settings), ErrSlotOffGrid)
	assert.ErrorIs(t, validateSlotOnGrid("09:10", settings), ErrSlotOffGrid)
}

func TestValidateEntitlementWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	day := func(offset int) time.Time {
		return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	// Сегодня и граница окна включительно
	assert.NoError(t, validateEntitlementWindow(day(0), now, 30))
	assert.NoError(t, validateEntitlementWindow(day(30), now, 30))

	// За границей окна
	assert.ErrorIs(t, validateEntitlementWindow(day(31), now, 30), ErrAdvanceWindowExceeded)

	// Членское окно шире гостевого
	assert.NoError(t, validateEntitlementWindow(day(31), now, 60))
	assert.NoError(t, validateEntitlementWindow(day(60), now, 60))
	assert.ErrorIs(t, validateEntitlementWindow(day(61), now, 60), ErrAdvanceWindowExceeded)

	// Прошедшая дата отклоняется до проверки окна
	assert.ErrorIs(t, validateEntitlementWindow(day(-1), now, 30), ErrDateInPast)
}

func TestComputePricing(t *testing.T) {
	settings := domain.DefaultCourseSettings()

	req := validRequest()
	req.PlayerCount = 3
	req.FeeType = domain.FeeNineHoles

	greenFee, cartFee, total := computePricing(req, settings)
	assert.Equal(t, 75.0, greenFee) // 25 x 3
	assert.Equal(t, 0.0, cartFee)
	assert.Equal(t, 75.0, total)

	// Аренда карта - за флайт, не за игрока
	req.CartRental = true
	greenFee, cartFee, total = computePricing(req, settings)
	assert.Equal(t, 75.0, greenFee)
	assert.Equal(t, 15.0, cartFee)
	assert.Equal(t, 90.0, total)

	req.FeeType = domain.FeeAllDay
	greenFee, _, total = computePricing(req, settings)
	assert.Equal(t, 120.0, greenFee) // 40 x 3
	assert.Equal(t, 135.0, total)
}

func TestSlotUnavailableReason(t *testing.T) {
	confirmed := []types.TimeString{"09:15"}

	assert.Equal(t, domain.ReasonBooked, slotUnavailableReason("09:15", confirmed, nil))
	assert.Equal(t, domain.UnavailableReason(""), slotUnavailableReason("09:30", confirmed, nil))

	closed := &domain.CourseCondition{OverallCondition: domain.ConditionClosed, HolesAvailable: 9}
	assert.Equal(t, domain.ReasonCourseClosed, slotUnavailableReason("09:30", confirmed, closed))

	noHoles := &domain.CourseCondition{OverallCondition: domain.ConditionPoor, HolesAvailable: 0}
	assert.Equal(t, domain.ReasonNoHoles, slotUnavailableReason("09:30", confirmed, noHoles))
}
