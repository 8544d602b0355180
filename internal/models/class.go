package models

import "time"

// ClassStatus represents the lifecycle of a class offering.
type ClassStatus string

// Possible class statuses. Only active offerings take part in matching.
const (
	ClassStatusActive    ClassStatus = "active"
	ClassStatusCompleted ClassStatus = "completed"
	ClassStatusCancelled ClassStatus = "cancelled"
)

// ClassOffering is a class a branch runs at a given timing for a set of levels and courses.
type ClassOffering struct {
	ID          string      `db:"id" json:"id"`
	BranchID    string      `db:"branch_id" json:"branch_id"`
	Status      ClassStatus `db:"status" json:"status"`
	Timing      string      `db:"timing" json:"timing"`
	Levels      []string    `db:"-" json:"levels"`
	Courses     []string    `db:"-" json:"courses"`
	StartDate   *time.Time  `db:"start_date" json:"start_date,omitempty"`
	TeacherID   *string     `db:"teacher_id" json:"teacher_id,omitempty"`
	TeacherName *string     `db:"teacher_name" json:"teacher_name,omitempty"`
}

// Active reports whether the offering is open for matching.
func (c ClassOffering) Active() bool {
	return c.Status == ClassStatusActive
}

// Teacher returns the resolved teacher name or an empty string.
func (c ClassOffering) Teacher() string {
	if c.TeacherName == nil {
		return ""
	}
	return *c.TeacherName
}
