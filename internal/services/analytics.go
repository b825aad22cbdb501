package services

import (
	"sync"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/types"
)

type AnalyticsService interface {
	// RecordView counts one view for the code and returns the new total.
	// Codes are not validated against the catalog; unknown codes are counted
	// too and simply never show up in ListAnalytics.
	RecordView(code string) int
	// ListAnalytics returns every catalog course with its current view count,
	// zero if the course was never viewed.
	ListAnalytics() []types.CourseViews
}

type analyticsService struct {
	log     *logger.Logger
	catalog *catalog.Store

	mu    sync.Mutex
	views map[string]int
}

func NewAnalyticsService(log *logger.Logger, cat *catalog.Store) AnalyticsService {
	return &analyticsService{
		log:     log.With("service", "AnalyticsService"),
		catalog: cat,
		views:   make(map[string]int),
	}
}

func (s *analyticsService) RecordView(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[code]++
	return s.views[code]
}

func (s *analyticsService) ListAnalytics() []types.CourseViews {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := s.catalog.AllCourses()
	out := make([]types.CourseViews, 0, len(courses))
	for _, c := range courses {
		out = append(out, types.CourseViews{Code: c.Code, Name: c.Name, Views: s.views[c.Code]})
	}
	return out
}
