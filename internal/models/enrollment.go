package models

import "time"

// Enrollment links a student to a class offering. The pair is unique.
type Enrollment struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	ClassID   string    `db:"class_id" json:"class_id"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}
