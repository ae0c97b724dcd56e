package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	max       int
	gotTerm   string
	gotCount  int
	result    *models.Result
	err       error
	callCount int
}

func (s *stubRunner) Run(_ context.Context, term string, count int) (*models.Result, error) {
	s.callCount++
	s.gotTerm = term
	s.gotCount = count
	return s.result, s.err
}

func (s *stubRunner) MaxPosts() int { return s.max }

func postForm(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	srv := NewServer(&stubRunner{max: 500}, "unused.png")

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="query"`)
	assert.Contains(t, rec.Body.String(), `value="50"`)
	assert.NotContains(t, rec.Body.String(), "Results for")
}

func TestAnalyze_RendersResult(t *testing.T) {
	runner := &stubRunner{
		max: 500,
		result: &models.Result{
			RunID:        "run-1",
			Query:        "coffee",
			Total:        3,
			Summary:      "Overall sentiment is mixed with no strong polarity.",
			Sentiments:   models.SentimentBuckets{Neutral: 33.33, StronglyPositive: 33.33, StronglyNegative: 33.33},
			Trending:     []string{"espresso", "morning"},
			Issues:       []string{"expensive"},
			Suggestions:  []string{"Lower pricing or add cheaper options."},
			MostPositive: "best espresso ever",
			MostNegative: "way too expensive",
			ChartPath:    "static/chart.png",
		},
	}
	srv := NewServer(runner, "unused.png")

	rec := postForm(t, srv.Routes(), url.Values{"query": {"  coffee "}, "count": {"120"}})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "coffee", runner.gotTerm)
	assert.Equal(t, 120, runner.gotCount)

	body := rec.Body.String()
	assert.Contains(t, body, `Results for "coffee" (3 posts)`)
	assert.Contains(t, body, "espresso, morning")
	assert.Contains(t, body, "Lower pricing or add cheaper options.")
	assert.Contains(t, body, "best espresso ever")
	assert.Contains(t, body, "/static/chart.png?run=run-1")
}

func TestAnalyze_CountFallbacks(t *testing.T) {
	runner := &stubRunner{max: 200, result: &models.Result{}}
	h := NewServer(runner, "unused.png").Routes()

	postForm(t, h, url.Values{"query": {"x"}, "count": {"abc"}})
	assert.Equal(t, 50, runner.gotCount)

	postForm(t, h, url.Values{"query": {"x"}, "count": {"9999"}})
	assert.Equal(t, 200, runner.gotCount)

	postForm(t, h, url.Values{"query": {"x"}})
	assert.Equal(t, 50, runner.gotCount)
}

func TestAnalyze_RunnerError(t *testing.T) {
	runner := &stubRunner{max: 500, err: errors.New("disk full")}
	rec := postForm(t, NewServer(runner, "unused.png").Routes(), url.Values{"query": {"x"}, "count": {"5"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Analysis failed")
	assert.NotContains(t, rec.Body.String(), "disk full")
}

func TestChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0o644))

	rec := httptest.NewRecorder()
	NewServer(&stubRunner{max: 500}, path).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/chart.png?run=abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestChart_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(&stubRunner{max: 500}, filepath.Join(t.TempDir(), "none.png")).Routes().
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/chart.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 50, ParseCount("", 500))
	assert.Equal(t, 50, ParseCount("fifty", 500))
	assert.Equal(t, 30, ParseCount(" 30 ", 500))
	assert.Equal(t, 500, ParseCount("501", 500))
	assert.Equal(t, -3, ParseCount("-3", 500))
}
