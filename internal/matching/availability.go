package matching

import (
	"sort"
	"strings"

	"github.com/noah-isme/educenter-api/internal/models"
)

// AllowedOptions lists the choices a student can still pick.
// Restricted is false when no branch was selected and every option is offered.
type AllowedOptions struct {
	Courses    []string
	Levels     []string
	Timings    []string
	Restricted bool
}

// ComputeAllowedOptions derives the allowed courses, levels and timings for sel from the
// class snapshot. Without a branch every active offering contributes (fail-open); with a
// branch, no eligible class means empty sets (fail-closed).
//
// Timings come from classes satisfying both the level and the course selection. Courses are
// constrained by the level and timing selections, levels by the course and timing
// selections, so a facet never filters itself.
func ComputeAllowedOptions(classes []models.ClassOffering, sel models.StudentSelection) AllowedOptions {
	branchID := strings.TrimSpace(sel.BranchID)
	pool := ActiveInBranch(classes, branchID)
	if branchID == "" {
		return AllowedOptions{
			Courses: collectLabels(pool, nil, coursesOf),
			Levels:  collectLabels(pool, nil, levelsOf),
			Timings: collectTimings(pool, nil),
		}
	}

	f := newSelectionFilter(sel)
	return AllowedOptions{
		Courses: collectLabels(pool, func(c models.ClassOffering) bool {
			return f.levelOk(c) && f.timingOk(c)
		}, coursesOf),
		Levels: collectLabels(pool, func(c models.ClassOffering) bool {
			return f.courseOk(c) && f.timingOk(c)
		}, levelsOf),
		Timings:    collectTimings(pool, f.eligible),
		Restricted: true,
	}
}

// AllowedTimings returns the timings of classes matching both the level and course selection.
func AllowedTimings(classes []models.ClassOffering, sel models.StudentSelection) []string {
	return ComputeAllowedOptions(classes, sel).Timings
}

// AllowedCourses returns the courses still selectable for sel.
func AllowedCourses(classes []models.ClassOffering, sel models.StudentSelection) []string {
	return ComputeAllowedOptions(classes, sel).Courses
}

// AllowedLevels returns the levels still selectable for sel.
func AllowedLevels(classes []models.ClassOffering, sel models.StudentSelection) []string {
	return ComputeAllowedOptions(classes, sel).Levels
}

// ActiveInBranch keeps active offerings, restricted to branchID when it is set.
func ActiveInBranch(classes []models.ClassOffering, branchID string) []models.ClassOffering {
	out := make([]models.ClassOffering, 0, len(classes))
	for _, c := range classes {
		if !c.Active() {
			continue
		}
		if branchID != "" && c.BranchID != branchID {
			continue
		}
		out = append(out, c)
	}
	return out
}

type selectionFilter struct {
	levels    levelMatcher
	courses   []string
	timingKey string
}

func newSelectionFilter(sel models.StudentSelection) selectionFilter {
	return selectionFilter{
		levels:    newLevelMatcher(trimAll(sel.SelectedLevels)),
		courses:   trimAll(sel.SelectedCourses),
		timingKey: NormalizeTiming(sel.Timing),
	}
}

func (f selectionFilter) levelOk(c models.ClassOffering) bool {
	if f.levels.empty() {
		return true
	}
	return f.levels.match(c.Levels, c.Courses)
}

func (f selectionFilter) courseOk(c models.ClassOffering) bool {
	if len(f.courses) == 0 {
		return true
	}
	return CourseMatch(c.Courses, f.courses)
}

func (f selectionFilter) timingOk(c models.ClassOffering) bool {
	if f.timingKey == "" {
		return true
	}
	return NormalizeTiming(c.Timing) == f.timingKey
}

func (f selectionFilter) eligible(c models.ClassOffering) bool {
	return f.levelOk(c) && f.courseOk(c)
}

func coursesOf(c models.ClassOffering) []string { return c.Courses }

func levelsOf(c models.ClassOffering) []string { return c.Levels }

func collectLabels(pool []models.ClassOffering, keep func(models.ClassOffering) bool, values func(models.ClassOffering) []string) []string {
	set := newOptionSet(labelKey)
	for _, c := range pool {
		if keep != nil && !keep(c) {
			continue
		}
		for _, v := range values(c) {
			set.add(v)
		}
	}
	return set.sorted()
}

func collectTimings(pool []models.ClassOffering, keep func(models.ClassOffering) bool) []string {
	set := newOptionSet(timingKey)
	for _, c := range pool {
		if keep != nil && !keep(c) {
			continue
		}
		set.add(c.Timing)
	}
	return set.sorted()
}

func labelKey(v string) string {
	if key := Normalize(v); key != "" {
		return key
	}
	return "raw:" + strings.ToLower(v)
}

func timingKey(v string) string {
	if key := NormalizeTiming(v); key != "" {
		return key
	}
	return "raw:" + strings.ToLower(v)
}

// optionSet de-duplicates values by key, keeping the first raw label seen.
type optionSet struct {
	key    func(string) string
	seen   map[string]struct{}
	values []string
}

func newOptionSet(key func(string) string) *optionSet {
	return &optionSet{key: key, seen: make(map[string]struct{}), values: []string{}}
}

func (s *optionSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	k := s.key(v)
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.values = append(s.values, v)
}

func (s *optionSet) sorted() []string {
	sort.Strings(s.values)
	return s.values
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
