package matching

import "strings"

// LooseMatch reports whether a and b are equal after Normalize, or one contains the other.
// Labels that normalize to nothing (Arabic-only text) are contained in every label, so they
// match anything.
func LooseMatch(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// CourseMatch reports whether any selected course loosely matches any class course.
func CourseMatch(classCourses, selectedCourses []string) bool {
	return anyLooseMatch(classCourses, selectedCourses)
}

// LevelMatch applies the level policy for one class.
//
// When any selected level carries a level key, only class levels with the same key match
// and nothing falls back to text matching; "Level 1" never matches "Level 10". Otherwise the
// selected labels are loosely matched against the class levels, then against the class courses.
func LevelMatch(classLevels, classCourses, selectedLevels []string) bool {
	return newLevelMatcher(selectedLevels).match(classLevels, classCourses)
}

type levelMatcher struct {
	labels []string
	keys   map[string]struct{}
}

func newLevelMatcher(selected []string) levelMatcher {
	m := levelMatcher{labels: selected}
	for _, key := range LevelKeys(selected) {
		if m.keys == nil {
			m.keys = make(map[string]struct{})
		}
		m.keys[key] = struct{}{}
	}
	return m
}

func (m levelMatcher) empty() bool {
	return len(m.labels) == 0
}

func (m levelMatcher) match(classLevels, classCourses []string) bool {
	if len(m.keys) > 0 {
		for _, level := range classLevels {
			key, ok := ExtractLevelKey(level)
			if !ok {
				continue
			}
			if _, hit := m.keys[key]; hit {
				return true
			}
		}
		return false
	}
	if anyLooseMatch(classLevels, m.labels) {
		return true
	}
	// some offerings carry their level descriptor inside a course label
	return anyLooseMatch(classCourses, m.labels)
}

func anyLooseMatch(values, selected []string) bool {
	for _, s := range selected {
		for _, v := range values {
			if LooseMatch(v, s) {
				return true
			}
		}
	}
	return false
}
