package domain

// Default course settings, used when no settings row is configured
const (
	DefaultOpenTime            = "07:00"
	DefaultCloseTime           = "19:00"
	DefaultSlotIntervalMinutes = 15

	DefaultNineHoleRate   = 25.0
	DefaultAllDayRate     = 40.0
	DefaultCartRentalRate = 15.0

	DefaultGuestAdvanceDays        = 30
	DefaultMemberAdvanceDays       = 60
	DefaultCancellationNoticeHours = 24
)

// Business validation constants
const (
	MinPlayerCount = 1
	MaxPlayerCount = 4

	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 60

	MinAdvanceDays = 1
	MaxAdvanceDays = 365

	MinCancellationNoticeHours = 0
	MaxCancellationNoticeHours = 168 // 1 week

	MinHolesAvailable = 0
	MaxHolesAvailable = 9

	MaxGuestNameLength          = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при расчёте доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
