package dto

import "time"

// AllowedOptionsResponse lists what a student can still pick for a branch.
// Restricted is false when no branch was supplied and nothing was filtered.
type AllowedOptionsResponse struct {
	BranchID       string   `json:"branch_id,omitempty"`
	AllowedCourses []string `json:"allowed_courses"`
	AllowedLevels  []string `json:"allowed_levels"`
	AllowedTimings []string `json:"allowed_timings"`
	Restricted     bool     `json:"restricted"`
	ClassCount     int      `json:"class_count"`
}

// TeacherMappingResponse exposes the level and course teacher lookups of a branch.
type TeacherMappingResponse struct {
	BranchID       string              `json:"branch_id"`
	LevelTeachers  map[string]string   `json:"level_teachers"`
	CourseTeachers map[string]string   `json:"course_teachers"`
	LevelTimings   map[string][]string `json:"level_timings"`
	CourseTimings  map[string][]string `json:"course_timings"`
}

// TeacherLookupRequest carries the point lookups of a teacher mapping.
type TeacherLookupRequest struct {
	BranchID string `form:"-" validate:"required"`
	Level    string `form:"level"`
	Course   string `form:"course"`
}

// TeacherLookupResponse answers a teacher point lookup.
type TeacherLookupResponse struct {
	Level         string   `json:"level,omitempty"`
	LevelTeacher  *string  `json:"level_teacher,omitempty"`
	LevelTimings  []string `json:"level_timings,omitempty"`
	Course        string   `json:"course,omitempty"`
	CourseTeacher *string  `json:"course_teacher,omitempty"`
	CourseTimings []string `json:"course_timings,omitempty"`
}

// AutoEnrollmentStatus describes the outcome of an auto-enrollment run.
type AutoEnrollmentStatus string

// Auto-enrollment outcomes.
const (
	AutoEnrollmentQueued         AutoEnrollmentStatus = "queued"
	AutoEnrollmentCompleted      AutoEnrollmentStatus = "completed"
	AutoEnrollmentReviewRequired AutoEnrollmentStatus = "review_required"
)

// AutoEnrollmentResult reports the classes a student was matched with.
// EnrolledCount and ClassIDs cover every eligible class; NewlyEnrolled and AlreadyEnrolled
// split the ones written so far. FailedClassID names the insert that stopped a partial run.
type AutoEnrollmentResult struct {
	StudentID         string               `json:"student_id"`
	Status            AutoEnrollmentStatus `json:"status"`
	EnrolledCount     int                  `json:"enrolled_count"`
	ClassIDs          []string             `json:"class_ids"`
	EarliestStartDate *time.Time           `json:"earliest_start_date"`
	NewlyEnrolled     []string             `json:"newly_enrolled"`
	AlreadyEnrolled   []string             `json:"already_enrolled"`
	FailedClassID     string               `json:"failed_class_id,omitempty"`
	UnmatchedLevels   []string             `json:"unmatched_levels,omitempty"`
	Message           string               `json:"message,omitempty"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// StudentEnrollmentsResponse lists the classes a student is enrolled in.
type StudentEnrollmentsResponse struct {
	StudentID string   `json:"student_id"`
	ClassIDs  []string `json:"class_ids"`
}
