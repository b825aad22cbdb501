package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/handlers"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
	"github.com/courseatlas/backend/internal/store"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	cat := catalog.NewStore()
	users := store.NewUserFileStore(log, filepath.Join(t.TempDir(), "users.json"))

	analyticsService := services.NewAnalyticsService(log, cat)
	cartService := services.NewCartService(log, cat)
	userService := services.NewUserService(log, users)
	assistantService := services.NewAssistantService(log, cat, nil)
	recommendationService := services.NewRecommendationService(log, cat, nil)

	return NewRouter(RouterConfig{
		AllowOrigins:          []string{"http://localhost:3000"},
		CatalogHandler:        handlers.NewCatalogHandler(log, cat),
		AnalyticsHandler:      handlers.NewAnalyticsHandler(log, analyticsService),
		CartHandler:           handlers.NewCartHandler(log, cartService),
		UserHandler:           handlers.NewUserHandler(log, userService),
		AssistantHandler:      handlers.NewAssistantHandler(log, assistantService),
		RecommendationHandler: handlers.NewRecommendationHandler(log, cat, recommendationService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, payload
}

func TestMajorsRoute(t *testing.T) {
	router := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/majors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /majors = %d, want 200", w.Code)
	}
	var majors []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &majors); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(majors) != 3 || majors[0]["name"] != "Applied Machine Learning" {
		t.Fatalf("majors = %+v", majors)
	}
}

func TestCoursesRouteNotFound(t *testing.T) {
	router := testRouter(t)
	w, payload := doJSON(t, router, http.MethodGet, "/courses/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /courses/42 = %d, want 404", w.Code)
	}
	if payload["error"] == nil {
		t.Fatalf("missing error envelope: %v", payload)
	}
}

func TestViewAndAnalyticsRoutes(t *testing.T) {
	router := testRouter(t)
	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, router, http.MethodPost, "/courses/CS101/view", "")
		if w.Code != http.StatusOK {
			t.Fatalf("POST view = %d, want 200", w.Code)
		}
	}
	w, payload := doJSON(t, router, http.MethodGet, "/analytics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /analytics = %d, want 200", w.Code)
	}
	courses, ok := payload["courses"].([]any)
	if !ok || len(courses) != 9 {
		t.Fatalf("analytics payload = %v", payload)
	}
	for _, c := range courses {
		entry := c.(map[string]any)
		if entry["code"] == "CS101" && entry["views"].(float64) != 3 {
			t.Fatalf("CS101 views = %v, want 3", entry["views"])
		}
	}
}

func TestCartRoutes(t *testing.T) {
	router := testRouter(t)

	w, payload := doJSON(t, router, http.MethodPost, "/select-course", `{"courseCode":"CS101"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("select = %d: %v", w.Code, payload)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/select-course", `{"courseCode":"CS101"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate select = %d, want 409", w.Code)
	}

	w, payload = doJSON(t, router, http.MethodGet, "/selected-courses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list selected = %d", w.Code)
	}
	if payload["limit"].(float64) != 3 {
		t.Fatalf("limit = %v, want 3", payload["limit"])
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/remove-course/CS101", "")
	if w.Code != http.StatusOK {
		t.Fatalf("remove = %d, want 200", w.Code)
	}
}

func TestSignupLoginWelcomeRoutes(t *testing.T) {
	router := testRouter(t)

	w, payload := doJSON(t, router, http.MethodPost, "/signup", `{"name":"Ana","email":"ana@uni.edu","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signup = %d: %v", w.Code, payload)
	}
	uid, _ := payload["uid"].(string)
	if uid == "" {
		t.Fatalf("signup payload missing uid: %v", payload)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/login", `{"email":"ana@uni.edu","password":"wrong!"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", w.Code)
	}

	w, payload = doJSON(t, router, http.MethodGet, "/welcome/"+uid, "")
	if w.Code != http.StatusOK {
		t.Fatalf("welcome = %d", w.Code)
	}
	if payload["user_name"] != "Ana" {
		t.Fatalf("welcome payload = %v", payload)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/welcome/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown welcome = %d, want 404", w.Code)
	}
}

func TestAssistantRouteFallsBackWithoutAI(t *testing.T) {
	router := testRouter(t)
	w, payload := doJSON(t, router, http.MethodPost, "/assistant", `{"question":"statistics"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("assistant = %d, want 200", w.Code)
	}
	matches, ok := payload["matching_courses"].([]any)
	if !ok || len(matches) != 1 {
		t.Fatalf("matching_courses = %v", payload["matching_courses"])
	}
}

func TestRecommendRouteWithoutIndex(t *testing.T) {
	router := testRouter(t)
	w, _ := doJSON(t, router, http.MethodGet, "/recommend/CS101", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("recommend without index = %d, want 404", w.Code)
	}
}
