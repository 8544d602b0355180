package matching

import (
	"strings"

	"github.com/noah-isme/educenter-api/internal/models"
)

// TeacherCourseMap resolves the teacher and offered timings for a level or course label.
// It is derived from one class snapshot and never persisted.
type TeacherCourseMap struct {
	levelTeachers  *labelIndex[string]
	courseTeachers *labelIndex[string]
	levelTimings   *labelIndex[*optionSet]
	courseTimings  *labelIndex[*optionSet]
}

// BuildTeacherMap indexes the active classes in input order. The first class with a
// teacher name claims a level or course label; later classes never overwrite it.
func BuildTeacherMap(classes []models.ClassOffering) *TeacherCourseMap {
	m := &TeacherCourseMap{
		levelTeachers:  newLabelIndex[string](),
		courseTeachers: newLabelIndex[string](),
		levelTimings:   newLabelIndex[*optionSet](),
		courseTimings:  newLabelIndex[*optionSet](),
	}
	for _, c := range classes {
		if !c.Active() {
			continue
		}
		teacher := strings.TrimSpace(c.Teacher())
		for _, level := range c.Levels {
			m.record(m.levelTeachers, m.levelTimings, level, teacher, c.Timing)
		}
		for _, course := range c.Courses {
			m.record(m.courseTeachers, m.courseTimings, course, teacher, c.Timing)
		}
	}
	return m
}

func (m *TeacherCourseMap) record(teachers *labelIndex[string], timings *labelIndex[*optionSet], label, teacher, timing string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	set, ok := timings.values[label]
	if !ok {
		set = newOptionSet(timingKey)
		timings.put(label, set)
	}
	set.add(timing)
	if teacher != "" {
		teachers.putIfAbsent(label, teacher)
	}
}

// TeacherForLevel returns the teacher assigned to the level matching q.
func (m *TeacherCourseMap) TeacherForLevel(q string) (string, bool) {
	return m.levelTeachers.lookup(q)
}

// TeacherForCourse returns the teacher assigned to the course matching q.
func (m *TeacherCourseMap) TeacherForCourse(q string) (string, bool) {
	return m.courseTeachers.lookup(q)
}

// TimingsForLevel returns the timings offered for the level matching q.
func (m *TeacherCourseMap) TimingsForLevel(q string) []string {
	return timingsOf(m.levelTimings, q)
}

// TimingsForCourse returns the timings offered for the course matching q.
func (m *TeacherCourseMap) TimingsForCourse(q string) []string {
	return timingsOf(m.courseTimings, q)
}

// LevelTeachers returns a copy of the level to teacher mapping.
func (m *TeacherCourseMap) LevelTeachers() map[string]string {
	return m.levelTeachers.snapshot()
}

// CourseTeachers returns a copy of the course to teacher mapping.
func (m *TeacherCourseMap) CourseTeachers() map[string]string {
	return m.courseTeachers.snapshot()
}

// LevelTimings returns the timings offered per level label.
func (m *TeacherCourseMap) LevelTimings() map[string][]string {
	return timingSnapshot(m.levelTimings)
}

// CourseTimings returns the timings offered per course label.
func (m *TeacherCourseMap) CourseTimings() map[string][]string {
	return timingSnapshot(m.courseTimings)
}

func timingsOf(idx *labelIndex[*optionSet], q string) []string {
	set, ok := idx.lookup(q)
	if !ok {
		return []string{}
	}
	return append([]string(nil), set.values...)
}

func timingSnapshot(idx *labelIndex[*optionSet]) map[string][]string {
	out := make(map[string][]string, len(idx.labels))
	for _, label := range idx.labels {
		out[label] = append([]string(nil), idx.values[label].values...)
	}
	return out
}

// labelIndex is an insertion-ordered map keyed by trimmed labels.
type labelIndex[V any] struct {
	labels []string
	values map[string]V
}

func newLabelIndex[V any]() *labelIndex[V] {
	return &labelIndex[V]{values: make(map[string]V)}
}

func (idx *labelIndex[V]) put(label string, v V) {
	if _, ok := idx.values[label]; !ok {
		idx.labels = append(idx.labels, label)
	}
	idx.values[label] = v
}

func (idx *labelIndex[V]) putIfAbsent(label string, v V) {
	if _, ok := idx.values[label]; ok {
		return
	}
	idx.put(label, v)
}

func (idx *labelIndex[V]) snapshot() map[string]V {
	out := make(map[string]V, len(idx.values))
	for k, v := range idx.values {
		out[k] = v
	}
	return out
}

// lookup tries an exact label, then the level key of q, then case-insensitive containment.
// A query carrying a level key only ever matches by key.
func (idx *labelIndex[V]) lookup(q string) (V, bool) {
	var zero V
	q = strings.TrimSpace(q)
	if q == "" {
		return zero, false
	}
	if v, ok := idx.values[q]; ok {
		return v, true
	}
	if key, ok := ExtractLevelKey(q); ok {
		for _, label := range idx.labels {
			if k, ok := ExtractLevelKey(label); ok && k == key {
				return idx.values[label], true
			}
		}
		return zero, false
	}
	lq := strings.ToLower(q)
	for _, label := range idx.labels {
		ll := strings.ToLower(label)
		if strings.Contains(ll, lq) || strings.Contains(lq, ll) {
			return idx.values[label], true
		}
	}
	return zero, false
}
