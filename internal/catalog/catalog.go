package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/courseatlas/backend/internal/platform/apierr"
	"github.com/courseatlas/backend/internal/types"
)

// Store is the process-constant course catalog. Majors keep their declaration
// order; the positional index doubles as the external major id. Reordering
// majors changes the ids, so the order below must stay append-only.
type Store struct {
	majors []Major
}

type Major struct {
	Name    string
	Courses []types.Course
}

func NewStore() *Store {
	return &Store{majors: majorsData}
}

func (s *Store) ListMajors() []types.MajorSummary {
	out := make([]types.MajorSummary, 0, len(s.majors))
	for i, m := range s.majors {
		out = append(out, types.MajorSummary{ID: i, Name: m.Name})
	}
	return out
}

func (s *Store) Courses(majorID int) (string, []types.Course, error) {
	if majorID < 0 || majorID >= len(s.majors) {
		return "", nil, apierr.New(http.StatusNotFound, "major_not_found", fmt.Errorf("major %d not found", majorID))
	}
	m := s.majors[majorID]
	return m.Name, m.Courses, nil
}

func (s *Store) Faculty(majorID int) (string, []types.Faculty, error) {
	name, courses, err := s.Courses(majorID)
	if err != nil {
		return "", nil, err
	}
	out := make([]types.Faculty, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Faculty)
	}
	return name, out, nil
}

// FindCourse looks a course up by code, case-insensitively.
func (s *Store) FindCourse(code string) (types.Course, bool) {
	for _, m := range s.majors {
		for _, c := range m.Courses {
			if strings.EqualFold(c.Code, code) {
				return c, true
			}
		}
	}
	return types.Course{}, false
}

// AllCourses returns every course in major order, then course order.
func (s *Store) AllCourses() []types.Course {
	var out []types.Course
	for _, m := range s.majors {
		out = append(out, m.Courses...)
	}
	return out
}
