package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StudentSelection is the in-progress choice of a student during registration.
type StudentSelection struct {
	BranchID        string   `json:"branch_id"`
	SelectedCourses []string `json:"selected_courses"`
	SelectedLevels  []string `json:"selected_levels"`
	Timing          string   `json:"timing"`
}

// StudentProfile is the finalized registration consumed by auto-enrollment.
type StudentProfile struct {
	ID          string          `json:"id" validate:"required"`
	BranchID    string          `json:"branch_id"`
	Program     CourseSelection `json:"program"`
	CourseLevel string          `json:"course_level"`
	Timing      *string         `json:"timing,omitempty"`
	Courses     []string        `json:"courses,omitempty"`
}

// CourseSelection holds either an explicit list of courses or a legacy program value.
// Legacy values may be a JSON-encoded list or a bare course name.
type CourseSelection struct {
	list     []string
	legacy   string
	explicit bool
}

// ExplicitList builds a selection from an actual list of courses.
func ExplicitList(courses []string) CourseSelection {
	return CourseSelection{list: courses, explicit: true}
}

// LegacyProgram builds a selection from a raw program value.
func LegacyProgram(raw string) CourseSelection {
	return CourseSelection{legacy: raw}
}

// IsExplicit reports whether the selection came from an actual list.
func (c CourseSelection) IsExplicit() bool {
	return c.explicit
}

// Raw returns the legacy program text, empty for explicit lists.
func (c CourseSelection) Raw() string {
	return c.legacy
}

// Courses resolves the selection into a clean list of course values.
func (c CourseSelection) Courses() []string {
	if c.explicit {
		return cleanValues(c.list)
	}
	raw := strings.TrimSpace(c.legacy)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		if list, ok := decodeList([]byte(raw)); ok {
			return cleanValues(list)
		}
	}
	return []string{raw}
}

// UnmarshalJSON accepts a list, a string, or any other value degraded to its raw text.
func (c *CourseSelection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = CourseSelection{}
		return nil
	}
	if list, ok := decodeList(data); ok {
		*c = ExplicitList(list)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = LegacyProgram(s)
		return nil
	}
	*c = LegacyProgram(string(data))
	return nil
}

// MarshalJSON writes explicit selections as lists and legacy ones as strings.
func (c CourseSelection) MarshalJSON() ([]byte, error) {
	if c.explicit {
		if c.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.list)
	}
	return json.Marshal(c.legacy)
}

func decodeList(data []byte) ([]string, bool) {
	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case nil:
		case string:
			out = append(out, v)
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out, true
}

func cleanValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
