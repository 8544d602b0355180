package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooseMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Advanced English", "advanced", true},
		{"General English", "general-english", true},
		{"Level 1", "Level 10", true},
		{"Business English", "General English", false},
		{"", "General English", true},
		{"", "", true},
		{"مستوى أول", "General English", true},
		{"اللغة الإنجليزية", "General English", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LooseMatch(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
		assert.Equal(t, LooseMatch(tc.a, tc.b), LooseMatch(tc.b, tc.a), "symmetry %q vs %q", tc.a, tc.b)
	}
}

func TestLevelMatchKeyedSelectionIsStrict(t *testing.T) {
	assert.False(t, LevelMatch([]string{"Level 10"}, nil, []string{"Level 1"}))
	assert.False(t, LevelMatch([]string{"Level 11", "Level 12"}, nil, []string{"Level-1"}))
	assert.True(t, LevelMatch([]string{"Level-1 (1A) مستوى أول"}, nil, []string{"level 1"}))
	assert.True(t, LevelMatch([]string{"Level 2", "Level 1"}, nil, []string{"LEVEL_1"}))
}

func TestLevelMatchKeyedSelectionIgnoresUnkeyedClassLevels(t *testing.T) {
	// keyed selections never consult unkeyed class levels or course labels
	assert.False(t, LevelMatch([]string{"Beginner"}, []string{"Level 1 General"}, []string{"Level 1", "Beginner"}))
}

func TestLevelMatchLooseFallback(t *testing.T) {
	assert.True(t, LevelMatch([]string{"Advanced (C1)"}, nil, []string{"advanced"}))
	assert.False(t, LevelMatch([]string{"Beginner"}, nil, []string{"advanced"}))
	// level descriptor bundled inside a course label
	assert.True(t, LevelMatch(nil, []string{"IELTS Advanced"}, []string{"Advanced"}))
	assert.False(t, LevelMatch(nil, nil, []string{"Advanced"}))
}

func TestCourseMatch(t *testing.T) {
	assert.True(t, CourseMatch([]string{"General English (Morning)"}, []string{"General English"}))
	assert.True(t, CourseMatch([]string{"Business English"}, []string{"French", "business english"}))
	assert.False(t, CourseMatch([]string{"Business English"}, []string{"French"}))
	assert.False(t, CourseMatch(nil, []string{"French"}))
}
