package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/pkg/types"
)

func TestGenerateTeeSlots(t *testing.T) {
	// Стандартный день: 07:00-19:00 с шагом 15 минут = 48 слотов
	slots, err := generateTeeSlots("07:00", "19:00", 15)
	require.NoError(t, err)
	assert.Len(t, slots, 48)
	assert.Equal(t, types.TimeString("07:00"), slots[0])
	assert.Equal(t, types.TimeString("18:45"), slots[len(slots)-1])

	// Слот с началом ровно в closeTime не генерируется
	for _, s := range slots {
		assert.True(t, s.IsBefore("19:00"), "slot %s", s)
	}
}

func TestGenerateTeeSlots_Deterministic(t *testing.T) {
	first, err := generateTeeSlots("07:00", "19:00", 15)
	require.NoError(t, err)
	second, err := generateTeeSlots("07:00", "19:00", 15)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTeeSlots_UnevenInterval(t *testing.T) {
	// Интервал не делит окно нацело: последний слот начинается до закрытия
	slots, err := generateTeeSlots("09:00", "10:00", 25)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:25"), slots[1])
	assert.Equal(t, types.TimeString("09:50"), slots[2])
}

func TestMarkAvailability_ConfirmedBookings(t *testing.T) {
	slotTimes := []types.TimeString{"09:00", "09:15", "09:30"}
	confirmed := []types.TimeString{"09:15"}

	slots := markAvailability(slotTimes, confirmed, nil)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.Equal(t, domain.ReasonBooked, slots[1].Reason)
	assert.True(t, slots[2].Available)
}

func TestMarkAvailability_CourseClosed(t *testing.T) {
	slotTimes := []types.TimeString{"09:00", "09:15"}
	cond := &domain.CourseCondition{
		OverallCondition: domain.ConditionClosed,
		HolesAvailable:   9,
	}

	slots := markAvailability(slotTimes, nil, cond)

	// Закрытое поле перекрывает всё, включая свободные слоты
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, domain.ReasonCourseClosed, s.Reason)
	}
}

func TestMarkAvailability_NoHoles(t *testing.T) {
	slotTimes := []types.TimeString{"09:00", "09:15"}
	cond := &domain.CourseCondition{
		OverallCondition: domain.ConditionPoor,
		HolesAvailable:   0,
	}

	slots := markAvailability(slotTimes, []types.TimeString{"09:00"}, cond)

	// Причина уровня дня имеет приоритет над занятостью слота
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, domain.ReasonNoHoles, s.Reason)
	}
}

func TestMarkAvailability_ReducedHolesStillOpen(t *testing.T) {
	slotTimes := []types.TimeString{"09:00"}
	cond := &domain.CourseCondition{
		OverallCondition: domain.ConditionFair,
		HolesAvailable:   5,
	}

	slots := markAvailability(slotTimes, nil, cond)
	assert.True(t, slots[0].Available)
}

func TestSlotOnGrid(t *testing.T) {
	tests := []struct {
		startTime types.TimeString
		onGrid    bool
	}{
		{"07:00", true},  // открытие
		{"09:15", true},  // кратно шагу
		{"18:45", true},  // последний слот
		{"19:00", false}, // ровно закрытие
		{"09:10", false}, // не кратно шагу
		{"06:45", false}, // до открытия
		{"20:00", false}, // после закрытия
	}

	for _, tt := range tests {
		got, err := slotOnGrid(tt.startTime, "07:00", "19:00", 15)
		require.NoError(t, err)
		assert.Equal(t, tt.onGrid, got, "startTime=%s", tt.startTime)
	}
}
