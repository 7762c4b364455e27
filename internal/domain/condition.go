package domain

import "time"

// OverallCondition represents the reported course condition for a date
type OverallCondition string

const (
	ConditionExcellent OverallCondition = "excellent"
	ConditionGood      OverallCondition = "good"
	ConditionFair      OverallCondition = "fair"
	ConditionPoor      OverallCondition = "poor"
	ConditionClosed    OverallCondition = "closed"
)

// IsValid returns true if the condition is a recognized value
func (c OverallCondition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionClosed:
		return true
	default:
		return false
	}
}

// CourseCondition is a per-date override of default course availability
// (weather or maintenance closure, reduced holes). Absence of a row for a
// date means the course is open with all holes.
type CourseCondition struct {
	ID               int64
	Date             time.Time
	OverallCondition OverallCondition
	HolesAvailable   int // 0..9
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BlocksPlay returns true if the override forces every slot on its date
// to be unavailable regardless of booking occupancy
func (c *CourseCondition) BlocksPlay() bool {
	return c.OverallCondition == ConditionClosed || c.HolesAvailable == 0
}
