package domain

import "github.com/m04kA/GCS-TeeTimeService/pkg/types"

// UnavailableReason explains why a tee slot cannot be booked
type UnavailableReason string

const (
	ReasonBooked       UnavailableReason = "already_booked"
	ReasonCourseClosed UnavailableReason = "course_closed"
	ReasonNoHoles      UnavailableReason = "no_holes_available"
)

// TeeSlot represents one position on the day's tee-time grid.
// Slots are derived from the operating window on every query, never persisted.
type TeeSlot struct {
	StartTime types.TimeString
	Available bool
	Reason    UnavailableReason // empty when Available
}

// IsBookable returns true if the slot can accept a booking
func (s *TeeSlot) IsBookable() bool {
	return s.Available
}
