package matching

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

var levelKeyPattern = regexp.MustCompile(`(?i)level[\s_-]?(\d{1,2})`)

// ExtractLevelKey returns the canonical "levelN" key embedded in a level label.
// "Level-5 (1A) مستوى خامس" yields "level5" and "LEVEL_12" yields "level12".
// Labels without a "level" token followed by digits report false.
func ExtractLevelKey(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	m := levelKeyPattern.FindStringSubmatch(norm.NFKC.String(value))
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return "level" + m[1], true
}

// LevelKeys extracts the distinct level keys of labels, in first-seen order.
func LevelKeys(labels []string) []string {
	var keys []string
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		key, ok := ExtractLevelKey(label)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
