package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/clients/openai"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/platform/apierr"
	"github.com/courseatlas/backend/internal/types"
)

const assistantPreamble = "You are a helpful course assistant for a university course catalog. " +
	"Answer questions about courses, topics, and faculty using only the catalog below. " +
	"Keep answers short and mention course codes when relevant."

const noMatchMessage = "I couldn't find any courses matching your question. " +
	"Try asking about a topic, a course name, or a faculty member."

type AskResult struct {
	Response        string         `json:"response"`
	MatchingCourses []types.Course `json:"matching_courses"`
}

type AssistantService interface {
	// Ask answers a question about the catalog. The external model is the
	// primary path; any failure there degrades to the deterministic keyword
	// search without surfacing the upstream error to the caller.
	Ask(ctx context.Context, question string) (*AskResult, error)
	// Summarize produces a one-line summary of a course description.
	// Upstream failures are classified and surfaced, not masked.
	Summarize(ctx context.Context, description string) (string, error)
}

type assistantService struct {
	log     *logger.Logger
	catalog *catalog.Store
	ai      openai.Client
}

func NewAssistantService(log *logger.Logger, cat *catalog.Store, ai openai.Client) AssistantService {
	return &assistantService{
		log:     log.With("service", "AssistantService"),
		catalog: cat,
		ai:      ai,
	}
}

func (s *assistantService) Ask(ctx context.Context, question string) (*AskResult, error) {
	if s.ai != nil {
		answer, err := s.ai.Chat(ctx, assistantPreamble, s.catalogContext()+"\n\nQuestion: "+question,
			openai.Options{Temperature: 0.7, MaxTokens: 500})
		if err == nil {
			return &AskResult{
				Response:        answer,
				MatchingCourses: s.coursesMentionedIn(answer),
			}, nil
		}
		s.log.Warn("Assistant model call failed, using keyword fallback", "error", err)
	}
	return s.fallbackSearch(question), nil
}

// catalogContext serializes the whole catalog into the prompt context block.
func (s *assistantService) catalogContext() string {
	var b strings.Builder
	b.WriteString("Course catalog:\n")
	for _, m := range s.catalog.ListMajors() {
		_, courses, err := s.catalog.Courses(m.ID)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\nMajor: %s\n", m.Name)
		for _, c := range courses {
			fmt.Fprintf(&b, "- %s %s (%d credits, %s): %s. Taught by %s (%s, office hours %s).\n",
				c.Code, c.Name, c.Credits, c.Semester, c.Description,
				c.Faculty.Name, c.Faculty.Email, c.Faculty.OfficeHours)
		}
	}
	return b.String()
}

// coursesMentionedIn highlights catalog courses whose code or name appears in
// the model's reply, case-insensitively.
func (s *assistantService) coursesMentionedIn(answer string) []types.Course {
	lower := strings.ToLower(answer)
	matches := []types.Course{}
	for _, c := range s.catalog.AllCourses() {
		if strings.Contains(lower, strings.ToLower(c.Code)) || strings.Contains(lower, strings.ToLower(c.Name)) {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *assistantService) fallbackSearch(question string) *AskResult {
	keywords := strings.Fields(strings.ToLower(question))

	matches := []types.Course{}
	for _, c := range s.catalog.AllCourses() {
		haystack := strings.ToLower(c.Name + " " + c.Description + " " + c.Faculty.Name)
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				matches = append(matches, c)
				break
			}
		}
	}

	return &AskResult{
		Response:        fallbackResponse(matches),
		MatchingCourses: matches,
	}
}

func fallbackResponse(matches []types.Course) string {
	switch len(matches) {
	case 0:
		return noMatchMessage
	case 1:
		c := matches[0]
		return fmt.Sprintf("**%s %s** (%d credits) might be what you're looking for: %s Taught by %s.",
			c.Code, c.Name, c.Credits, c.Description, c.Faculty.Name)
	default:
		var b strings.Builder
		b.WriteString("I found these courses:\n")
		shown := matches
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for i, c := range shown {
			fmt.Fprintf(&b, "%d. **%s %s** (%d credits): %s\n", i+1, c.Code, c.Name, c.Credits, c.Description)
		}
		if extra := len(matches) - len(shown); extra > 0 {
			fmt.Fprintf(&b, "...and %d more.", extra)
		}
		return strings.TrimRight(b.String(), "\n")
	}
}

func (s *assistantService) Summarize(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", apierr.New(http.StatusBadRequest, "invalid_description", fmt.Errorf("course description is required"))
	}
	if s.ai == nil {
		return "", apierr.New(http.StatusUnauthorized, "ai_not_configured", fmt.Errorf("no AI credential configured"))
	}

	summary, err := s.ai.Chat(ctx,
		"Summarize the following course description in one short sentence for a student.",
		description,
		openai.Options{Temperature: 0.3, MaxTokens: 150})
	if err != nil {
		return "", classifyUpstreamError(err)
	}
	return strings.TrimSpace(summary), nil
}

// classifyUpstreamError sorts provider failures into the caller-facing
// taxonomy. The HTTP status is authoritative when present; the text matching
// below it is brittle but mirrors how provider SDK errors actually read.
func classifyUpstreamError(err error) *apierr.Error {
	var httpErr *openai.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden:
			return apierr.New(http.StatusUnauthorized, "upstream_unauthorized", err)
		case httpErr.StatusCode == http.StatusTooManyRequests:
			return apierr.New(http.StatusTooManyRequests, "upstream_rate_limited", err)
		case httpErr.StatusCode >= 500:
			return apierr.New(http.StatusBadGateway, "upstream_error", err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401"):
		return apierr.New(http.StatusUnauthorized, "upstream_unauthorized", err)
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota") || strings.Contains(msg, "429"):
		return apierr.New(http.StatusTooManyRequests, "upstream_rate_limited", err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "connection") || strings.Contains(msg, "unavailable"):
		return apierr.New(http.StatusBadGateway, "upstream_error", err)
	default:
		return apierr.New(http.StatusInternalServerError, "unknown_error", err)
	}
}
