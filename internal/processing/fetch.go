package processing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentimeter/internal/clients"
	"github.com/spacesedan/sentimeter/internal/models"
)

// Source fetches cleaned posts for a search term.
type Source interface {
	Name() models.Source
	Fetch(ctx context.Context, term string, limit int) ([]models.Post, error)
}

type TwitterSource struct {
	Client *clients.TwitterClient
}

func (s TwitterSource) Name() models.Source { return models.SourceTwitter }

func (s TwitterSource) Fetch(ctx context.Context, term string, limit int) ([]models.Post, error) {
	tweets, err := s.Client.SearchRecent(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(tweets))
	for _, tweet := range tweets {
		posts = append(posts, models.Post{Source: models.SourceTwitter, Text: CleanText(tweet.Text)})
	}
	return posts, nil
}

type RedditSource struct {
	Client *clients.RedditClient
}

func (s RedditSource) Name() models.Source { return models.SourceReddit }

func (s RedditSource) Fetch(ctx context.Context, term string, limit int) ([]models.Post, error) {
	results, err := s.Client.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(results))
	for _, result := range results {
		text := CleanText(result.Title + " " + MarkdownToText(result.Selftext))
		if text == "" {
			continue
		}
		posts = append(posts, models.Post{Source: models.SourceReddit, Text: text})
	}
	return posts, nil
}

// FetchPosts queries every source in order and concatenates what they return.
// A failing source is logged and contributes nothing. The combined list is
// capped at maxPosts.
func FetchPosts(ctx context.Context, sources []Source, term string, limit, maxPosts int) []models.Post {
	var all []models.Post

	for _, source := range sources {
		start := time.Now()
		posts, err := source.Fetch(ctx, term, limit)
		if err != nil {
			slog.Warn("[FetchPosts] Source failed, continuing without it",
				slog.String("source", string(source.Name())),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("[FetchPosts] Fetched posts",
			slog.String("source", string(source.Name())),
			slog.Int("count", len(posts)),
			slog.Duration("elapsed", time.Since(start)))
		all = append(all, posts...)
	}

	if maxPosts > 0 && len(all) > maxPosts {
		all = all[:maxPosts]
	}
	return all
}

// SanitizeTerm trims a user supplied search term.
func SanitizeTerm(term string) string {
	return strings.TrimSpace(term)
}
