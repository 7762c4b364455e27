package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}

	assert.True(t, confirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, confirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, confirmed.CanTransitionTo(StatusNoShow))
	assert.False(t, confirmed.CanTransitionTo(StatusConfirmed))

	// Все нетерминальные переходы запрещены из терминальных статусов
	for _, status := range []BookingStatus{StatusCancelled, StatusCompleted, StatusNoShow} {
		b := &Booking{Status: status}
		assert.False(t, b.CanTransitionTo(StatusConfirmed), "from %s", status)
		assert.False(t, b.CanTransitionTo(StatusCompleted), "from %s", status)
		assert.False(t, b.CanBeCancelled(), "from %s", status)
		assert.False(t, b.CanBeUpdated(), "from %s", status)
	}
}

func TestBooking_IsGuest(t *testing.T) {
	userID := int64(42)

	assert.True(t, (&Booking{}).IsGuest())
	assert.False(t, (&Booking{UserID: &userID}).IsGuest())
}

func TestBooking_TeeOffAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:15"),
	}

	teeOff, err := b.TeeOffAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 9, 15, 0, 0, time.UTC), teeOff)

	b.StartTime = types.TimeString("bad")
	_, err = b.TeeOffAt(time.UTC)
	assert.Error(t, err)
}

func TestFeeType_IsValid(t *testing.T) {
	assert.True(t, FeeNineHoles.IsValid())
	assert.True(t, FeeAllDay.IsValid())
	assert.False(t, FeeType("eighteen_holes").IsValid())
	assert.False(t, FeeType("").IsValid())
}
