package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/clients/openai"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/platform/apierr"
	"github.com/courseatlas/backend/internal/types"
)

const recommendLimit = 3

type RecommendationService interface {
	// BuildIndex embeds every catalog course once. Per-course failures are
	// logged and the course is left out of the index; there is no retry and
	// no incremental rebuild.
	BuildIndex(ctx context.Context) error
	// Recommend ranks all other indexed courses by cosine similarity to the
	// query course and returns the top entries. A course that exists in the
	// catalog but failed to embed at startup is still "not found" here.
	Recommend(code string) ([]types.RecommendedCourse, error)
	IndexSize() int
}

type indexEntry struct {
	course types.Course
	vector []float32
}

type recommendationService struct {
	log     *logger.Logger
	catalog *catalog.Store
	ai      openai.Client

	mu sync.RWMutex
	// Catalog order; ties in similarity keep this order via stable sort.
	entries []indexEntry
}

func NewRecommendationService(log *logger.Logger, cat *catalog.Store, ai openai.Client) RecommendationService {
	return &recommendationService{
		log:     log.With("service", "RecommendationService"),
		catalog: cat,
		ai:      ai,
	}
}

func (s *recommendationService) BuildIndex(ctx context.Context) error {
	if s.ai == nil {
		s.log.Warn("No embedding client configured, recommendations disabled")
		return nil
	}

	courses := s.catalog.AllCourses()
	vectors := make([][]float32, len(courses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, course := range courses {
		i, course := i, course
		g.Go(func() error {
			vecs, err := s.ai.Embed(gctx, []string{course.Name + ". " + course.Description})
			if err != nil {
				s.log.Warn("Embedding failed, omitting course from index",
					"code", course.Code, "error", err)
				return nil
			}
			if len(vecs) == 1 {
				vectors[i] = vecs[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
	for i, course := range courses {
		if len(vectors[i]) == 0 {
			continue
		}
		s.entries = append(s.entries, indexEntry{course: course, vector: vectors[i]})
	}
	s.log.Info("Embedding index built", "indexed", len(s.entries), "total", len(courses))
	return nil
}

func (s *recommendationService) Recommend(code string) ([]types.RecommendedCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var query *indexEntry
	for i := range s.entries {
		if strings.EqualFold(s.entries[i].course.Code, code) {
			query = &s.entries[i]
			break
		}
	}
	if query == nil {
		return nil, apierr.New(http.StatusNotFound, "course_not_indexed",
			fmt.Errorf("no embedding for course %s", code))
	}

	type scoredEntry struct {
		course types.Course
		sim    float64
	}
	scored := make([]scoredEntry, 0, len(s.entries)-1)
	for i := range s.entries {
		e := &s.entries[i]
		if strings.EqualFold(e.course.Code, query.course.Code) {
			continue
		}
		scored = append(scored, scoredEntry{course: e.course, sim: cosine(query.vector, e.vector)})
	}

	// Sort on the exact similarity; rounding happens only on the reported
	// score, so near-ties still rank by their true value.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].sim > scored[j].sim
	})

	if len(scored) > recommendLimit {
		scored = scored[:recommendLimit]
	}
	out := make([]types.RecommendedCourse, 0, len(scored))
	for _, sc := range scored {
		out = append(out, types.RecommendedCourse{
			Course:     sc.course,
			Similarity: math.Round(sc.sim*1000) / 1000,
		})
	}
	return out, nil
}

func (s *recommendationService) IndexSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// cosine is (a·b)/(‖a‖‖b‖), defined as 0 when either norm is 0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := 0; i < len(a); i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
