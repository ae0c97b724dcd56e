package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

// Runner executes one analysis.
type Runner interface {
	Run(ctx context.Context, term string, count int) (*models.Result, error)
	MaxPosts() int
}

type Server struct {
	runner    Runner
	chartPath string
	tmpl      *template.Template

	// every run overwrites the same chart file
	mu sync.Mutex
}

type pageData struct {
	Query    string
	Count    int
	MaxPosts int
	Result   *models.Result
	Error    string
}

func NewServer(runner Runner, chartPath string) *Server {
	return &Server{
		runner:    runner,
		chartPath: chartPath,
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleAnalyze)
	mux.HandleFunc("GET /static/chart.png", s.handleChart)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{Count: config.DefaultCount, MaxPosts: s.runner.MaxPosts()})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(r.PostFormValue("query"))
	count := ParseCount(r.PostFormValue("count"), s.runner.MaxPosts())
	data := pageData{Query: query, Count: count, MaxPosts: s.runner.MaxPosts()}

	s.mu.Lock()
	result, err := s.runner.Run(r.Context(), query, count)
	s.mu.Unlock()

	if err != nil {
		slog.Error("[Web] Analysis failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		data.Error = "Analysis failed, check the server logs."
		w.WriteHeader(http.StatusInternalServerError)
	}
	data.Result = result
	s.render(w, data)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, s.chartPath)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		slog.Error("[Web] Failed to render template", slog.String("error", err.Error()))
	}
}

// ParseCount reads the requested post count. Non-numeric input falls back to
// the default and anything above max is capped.
func ParseCount(raw string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = config.DefaultCount
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
