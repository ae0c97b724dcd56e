package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentimeter/internal/models"
	"golang.org/x/oauth2"
)

type TwitterClient struct {
	BaseURL string
	Client  *http.Client
}

// NewTwitterClient returns a v2 API client authenticating with an app bearer token.
func NewTwitterClient(baseURL, bearerToken string, timeout time.Duration) *TwitterClient {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: bearerToken,
		TokenType:   "Bearer",
	})

	httpClient := oauth2.NewClient(context.Background(), src)
	if timeout <= 0 {
		timeout = DEFAULT_HTTP_TIMEOUT
	}
	httpClient.Timeout = timeout

	return &TwitterClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  httpClient,
	}
}

// SearchRecent returns up to limit English, non-retweet tweets matching term,
// following next_token pagination until enough have been collected.
func (tc *TwitterClient) SearchRecent(ctx context.Context, term string, limit int) ([]models.Tweet, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := fmt.Sprintf("%s lang:en -is:retweet", term)
	tweets := make([]models.Tweet, 0, limit)
	nextToken := ""

	for len(tweets) < limit {
		page, err := tc.searchPage(ctx, query, pageSize(limit-len(tweets)), nextToken)
		if err != nil {
			return nil, err
		}

		tweets = append(tweets, page.Data...)
		slog.Debug("[TwitterClient] Fetched page",
			slog.Int("page_count", len(page.Data)),
			slog.Int("total", len(tweets)))

		if len(page.Data) == 0 || page.Meta.NextToken == "" {
			break
		}
		nextToken = page.Meta.NextToken
	}

	if len(tweets) > limit {
		tweets = tweets[:limit]
	}
	return tweets, nil
}

func pageSize(remaining int) int {
	if remaining > TWITTER_PAGE_MAX {
		return TWITTER_PAGE_MAX
	}
	if remaining < TWITTER_PAGE_MIN {
		return TWITTER_PAGE_MIN
	}
	return remaining
}

func (tc *TwitterClient) searchPage(ctx context.Context, query string, maxResults int, nextToken string) (*models.TwitterSearchResponse, error) {
	parsedURL, err := url.Parse(tc.BaseURL + TWITTER_SEARCH_PATH)
	if err != nil {
		return nil, fmt.Errorf("[TwitterClient] Failed to parse URL: %w", err)
	}

	params := parsedURL.Query()
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("tweet.fields", "text,lang")
	if nextToken != "" {
		params.Set("next_token", nextToken)
	}
	parsedURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("[TwitterClient] Failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := tc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[TwitterClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var page models.TwitterSearchResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			return nil, fmt.Errorf("[TwitterClient] Failed to parse JSON response: %w", err)
		}
		return &page, nil
	case http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("[TwitterClient] %w", ErrRateLimited)
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("[TwitterClient] Invalid bearer token, check credentials")
	default:
		return nil, fmt.Errorf("[TwitterClient] Unexpected status code %d", resp.StatusCode)
	}
}
