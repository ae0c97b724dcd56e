package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/clients"
	"github.com/spacesedan/sentimeter/internal/insights"
	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/spacesedan/sentimeter/internal/processing"
	"github.com/spacesedan/sentimeter/internal/report"
	"github.com/spacesedan/sentimeter/internal/sentiment"
)

// Narrator writes an optional free-text readout of a finished result.
type Narrator interface {
	Narrate(ctx context.Context, r *models.Result) (string, error)
}

type Options struct {
	Sources  []processing.Source
	Scorer   sentiment.Scorer
	Narrator Narrator
}

// DefaultOptions wires the live Twitter and Reddit sources, the VADER scorer
// and, when an OpenAI key is configured, the narrator.
func DefaultOptions(cfg *config.Config) Options {
	opts := Options{
		Sources: []processing.Source{
			processing.TwitterSource{Client: clients.NewTwitterClient(cfg.Twitter.BaseURL, cfg.Twitter.BearerToken, cfg.Twitter.Timeout)},
			processing.RedditSource{Client: clients.NewRedditClient(cfg.Reddit.BaseURL, cfg.Reddit.Timeout)},
		},
		Scorer: sentiment.NewVaderScorer(),
	}
	if cfg.OpenAI.APIKey != "" {
		opts.Narrator = clients.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, "", cfg.OpenAI.Timeout)
	}
	return opts
}

type Pipeline struct {
	cfg      *config.Config
	sources  []processing.Source
	scorer   sentiment.Scorer
	narrator Narrator
}

func New(cfg *config.Config, opts Options) *Pipeline {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = sentiment.NewVaderScorer()
	}
	return &Pipeline{
		cfg:      cfg,
		sources:  opts.Sources,
		scorer:   scorer,
		narrator: opts.Narrator,
	}
}

// MaxPosts is the configured ceiling on requested posts.
func (p *Pipeline) MaxPosts() int {
	return p.cfg.Twitter.MaxPosts
}

// Run fetches posts for term, dumps them to CSV, scores and buckets them,
// draws the chart and derives the insights. Only a failed CSV write aborts
// the run; every other stage degrades and is logged.
func (p *Pipeline) Run(ctx context.Context, term string, count int) (*models.Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	count = p.cfg.ClampCount(count)

	slog.Info("[Pipeline] Starting run",
		slog.String("run_id", runID),
		slog.String("query", term),
		slog.Int("count", count))

	posts := processing.FetchPosts(ctx, p.sources, term, count, p.cfg.Twitter.MaxPosts)

	csvPath := report.CSVPath(p.cfg.Output.Dir, term)
	if err := report.WriteCSV(csvPath, posts); err != nil {
		slog.Error("[Pipeline] Failed to write csv",
			slog.String("run_id", runID),
			slog.String("error", err.Error()))
		return nil, err
	}

	scored := p.score(posts)
	polarities := make([]float64, len(scored))
	for i, s := range scored {
		polarities[i] = s.Polarity
	}
	buckets := sentiment.Aggregate(polarities)

	chartPath := p.cfg.Output.ChartPath
	if err := report.RenderPieChart(chartPath, buckets, term, len(scored)); err != nil {
		if errors.Is(err, report.ErrNoData) {
			slog.Warn("[Pipeline] No posts, skipping chart", slog.String("run_id", runID))
		} else {
			slog.Error("[Pipeline] Failed to render chart",
				slog.String("run_id", runID),
				slog.String("error", err.Error()))
		}
		chartPath = ""
	}

	issues := insights.ExtractIssues(insights.NegativeTexts(scored))
	mostPositive, mostNegative := insights.ExtremeComments(scored)

	result := &models.Result{
		RunID:        runID,
		Query:        term,
		Total:        len(scored),
		Sentiments:   buckets,
		Summary:      insights.Summary(buckets),
		Trending:     insights.TrendingTopics(scored),
		Issues:       issues,
		Suggestions:  insights.Suggestions(issues),
		MostPositive: mostPositive,
		MostNegative: mostNegative,
		CSVPath:      csvPath,
		ChartPath:    chartPath,
	}

	if p.narrator != nil && result.Total > 0 {
		narrative, err := p.narrator.Narrate(ctx, result)
		if err != nil {
			slog.Warn("[Pipeline] Narrative unavailable",
				slog.String("run_id", runID),
				slog.String("error", err.Error()))
		} else {
			result.Narrative = narrative
		}
	}

	slog.Info("[Pipeline] Run complete",
		slog.String("run_id", runID),
		slog.Int("total", result.Total),
		slog.Float64("polarity", buckets.Polarity),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (p *Pipeline) score(posts []models.Post) []models.ScoredPost {
	scored := make([]models.ScoredPost, len(posts))
	for i, post := range posts {
		scored[i] = models.ScoredPost{Post: post, Polarity: p.scorer.Polarity(post.Text)}
	}
	return scored
}
