package services

import (
	"sync"
	"testing"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	return log
}

func TestRecordViewCountsEveryCall(t *testing.T) {
	svc := NewAnalyticsService(testLogger(t), catalog.NewStore())

	for want := 1; want <= 3; want++ {
		if got := svc.RecordView("CS101"); got != want {
			t.Fatalf("RecordView #%d = %d, want %d", want, got, want)
		}
	}
}

func TestRecordViewConcurrent(t *testing.T) {
	svc := NewAnalyticsService(testLogger(t), catalog.NewStore())

	const callers = 50
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.RecordView("CS101")
		}()
	}
	wg.Wait()

	for _, c := range svc.ListAnalytics() {
		if c.Code == "CS101" && c.Views != callers {
			t.Fatalf("CS101 views = %d after %d concurrent calls", c.Views, callers)
		}
	}
}

func TestListAnalyticsIncludesUnviewedCourses(t *testing.T) {
	svc := NewAnalyticsService(testLogger(t), catalog.NewStore())
	svc.RecordView("CS101")
	svc.RecordView("CS101")

	courses := svc.ListAnalytics()
	if len(courses) != 9 {
		t.Fatalf("ListAnalytics() returned %d courses, want 9", len(courses))
	}
	byCode := map[string]int{}
	for _, c := range courses {
		byCode[c.Code] = c.Views
	}
	if byCode["CS101"] != 2 {
		t.Fatalf("CS101 views = %d, want 2", byCode["CS101"])
	}
	if byCode["CS303"] != 0 {
		t.Fatalf("CS303 views = %d, want 0", byCode["CS303"])
	}
}

func TestRecordViewUnknownCodeIsCountedButNotListed(t *testing.T) {
	svc := NewAnalyticsService(testLogger(t), catalog.NewStore())
	if got := svc.RecordView("NOPE42"); got != 1 {
		t.Fatalf("RecordView(unknown) = %d, want 1", got)
	}
	for _, c := range svc.ListAnalytics() {
		if c.Code == "NOPE42" {
			t.Fatalf("unknown code leaked into analytics listing")
		}
	}
}
