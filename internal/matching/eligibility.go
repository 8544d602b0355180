package matching

import (
	"strings"
	"time"

	"github.com/noah-isme/educenter-api/internal/models"
)

// Criteria is a student profile resolved into matchable values.
type Criteria struct {
	StudentID string
	BranchID  string
	Courses   []string
	Levels    []string
	// LevelKeys holds the keys extracted from Levels.
	LevelKeys []string
	// UnmatchedLevels holds Levels without a key; they are only reported.
	UnmatchedLevels []string
	Timing          string
	HasTiming       bool
}

// NewCriteria resolves the course and level shapes of a profile. An explicit course list
// wins over the legacy program value.
func NewCriteria(p models.StudentProfile) Criteria {
	cr := Criteria{
		StudentID: p.ID,
		BranchID:  strings.TrimSpace(p.BranchID),
	}
	if courses := models.ExplicitList(p.Courses).Courses(); len(courses) > 0 {
		cr.Courses = courses
	} else {
		cr.Courses = p.Program.Courses()
	}
	for _, part := range strings.Split(p.CourseLevel, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cr.Levels = append(cr.Levels, part)
		if _, ok := ExtractLevelKey(part); !ok {
			cr.UnmatchedLevels = append(cr.UnmatchedLevels, part)
		}
	}
	cr.LevelKeys = LevelKeys(cr.Levels)
	if p.Timing != nil {
		if t := strings.TrimSpace(*p.Timing); t != "" {
			cr.Timing = t
			cr.HasTiming = true
		}
	}
	return cr
}

// Eligibility lists the classes a student should join.
type Eligibility struct {
	ClassIDs          []string
	EarliestStartDate *time.Time
}

// SelectEligible returns the active classes matching cr. Timing is compared exactly, courses
// loosely, and levels through the shared level policy.
func SelectEligible(cr Criteria, classes []models.ClassOffering) Eligibility {
	levels := newLevelMatcher(cr.Levels)
	result := Eligibility{ClassIDs: []string{}}
	seen := make(map[string]struct{})
	for _, c := range ActiveInBranch(classes, cr.BranchID) {
		if cr.HasTiming && strings.TrimSpace(c.Timing) != cr.Timing {
			continue
		}
		if len(cr.Courses) > 0 && !CourseMatch(c.Courses, cr.Courses) {
			continue
		}
		if !levels.empty() && !levels.match(c.Levels, c.Courses) {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		result.ClassIDs = append(result.ClassIDs, c.ID)
		if c.StartDate != nil && (result.EarliestStartDate == nil || c.StartDate.Before(*result.EarliestStartDate)) {
			start := *c.StartDate
			result.EarliestStartDate = &start
		}
	}
	return result
}
