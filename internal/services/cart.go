package services

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/platform/apierr"
	"github.com/courseatlas/backend/internal/types"
)

// CartLimit is the maximum number of tentatively selected courses.
const CartLimit = 3

type CartService interface {
	Select(code string) ([]types.SelectedCourse, error)
	Remove(code string) ([]types.SelectedCourse, error)
	List() ([]types.SelectedCourse, int)
}

type cartService struct {
	log     *logger.Logger
	catalog *catalog.Store

	// The duplicate/capacity checks and the append are one critical section;
	// concurrent Select calls must not race past the limit.
	mu       sync.Mutex
	selected []types.SelectedCourse
}

func NewCartService(log *logger.Logger, cat *catalog.Store) CartService {
	return &cartService{
		log:      log.With("service", "CartService"),
		catalog:  cat,
		selected: make([]types.SelectedCourse, 0, CartLimit),
	}
}

func (s *cartService) Select(code string) ([]types.SelectedCourse, error) {
	course, ok := s.catalog.FindCourse(code)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "course_not_found", fmt.Errorf("course %s not found", code))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sc := range s.selected {
		if strings.EqualFold(sc.Code, course.Code) {
			return nil, apierr.New(http.StatusConflict, "already_selected", fmt.Errorf("course %s already selected", course.Code))
		}
	}
	if len(s.selected) >= CartLimit {
		return nil, apierr.New(http.StatusBadRequest, "limit_exceeded", fmt.Errorf("cannot select more than %d courses", CartLimit))
	}

	s.selected = append(s.selected, types.SelectedCourse{
		Code:     course.Code,
		Name:     course.Name,
		Credits:  course.Credits,
		Semester: course.Semester,
	})
	return s.snapshotLocked(), nil
}

func (s *cartService) Remove(code string) ([]types.SelectedCourse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.selected {
		if strings.EqualFold(sc.Code, code) {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return s.snapshotLocked(), nil
		}
	}
	return nil, apierr.New(http.StatusNotFound, "course_not_selected", fmt.Errorf("course %s is not selected", code))
}

func (s *cartService) List() ([]types.SelectedCourse, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), CartLimit
}

func (s *cartService) snapshotLocked() []types.SelectedCourse {
	out := make([]types.SelectedCourse, len(s.selected))
	copy(out, s.selected)
	return out
}
