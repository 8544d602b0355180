package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"General English":         "generalenglish",
		"Level-1 (1A) مستوى أول":  "level11a",
		"LEVEL1":                  "level1",
		"ＬＥＶＥＬ１":                  "level1",
		"  Mon 9:00 AM - 11:00 ":  "mon900am1100",
		"مستوى أول":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalizeTimingKeepsTimePunctuation(t *testing.T) {
	assert.Equal(t, "monday9:00am-11:00am", NormalizeTiming("Monday 9:00 AM - 11:00 AM"))
	assert.Equal(t, "9.30", NormalizeTiming("9.30"))
	assert.NotEqual(t, NormalizeTiming("9:00"), NormalizeTiming("900"))
	assert.Equal(t, "", NormalizeTiming(""))
}

func TestExtractLevelKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Level-5 (1A) مستوى خامس", "level5", true},
		{"LEVEL_12", "level12", true},
		{"level 3", "level3", true},
		{"Level7", "level7", true},
		{"Pre-Level-2 Intensive", "level2", true},
		{"ＬＥＶＥＬ 4", "level4", true},
		{"Advanced", "", false},
		{"Level", "", false},
		{"Level -1", "", false},
		{"", "", false},
		{"مستوى أول", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractLevelKey(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		if ok {
			assert.NotEmpty(t, got)
		}
	}
}

func TestLevelKeysDeduplicates(t *testing.T) {
	keys := LevelKeys([]string{"Level-1", "Beginner", "level 1 (A)", "LEVEL_3"})
	assert.Equal(t, []string{"level1", "level3"}, keys)
	assert.Empty(t, LevelKeys([]string{"Beginner", "Advanced"}))
}
