package domain

import "time"

// MembershipStatus represents the status of a club membership
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipCancelled MembershipStatus = "cancelled"
)

// Membership represents a club membership record.
// An active, unexpired membership grants the extended advance-booking window.
type Membership struct {
	ID        int64
	UserID    int64
	Status    MembershipStatus
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveOn returns true if the membership qualifies for member privileges
// as of the given day: status must be active and the end date not passed.
// Expired or cancelled memberships fall back to the guest window.
func (m *Membership) IsActiveOn(day time.Time) bool {
	if m.Status != MembershipActive {
		return false
	}
	endDay := time.Date(m.EndDate.Year(), m.EndDate.Month(), m.EndDate.Day(), 0, 0, 0, 0, day.Location())
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return !endDay.Before(today)
}
