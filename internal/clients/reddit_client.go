package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentimeter/internal/models"
)

// RedditClient searches reddit submissions through the pullpush.io archive.
type RedditClient struct {
	BaseURL string
	Client  *http.Client
}

func NewRedditClient(baseURL string, timeout time.Duration) *RedditClient {
	if timeout <= 0 {
		timeout = DEFAULT_HTTP_TIMEOUT
	}
	return &RedditClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Search issues a single request for up to size posts matching term.
func (rc *RedditClient) Search(ctx context.Context, term string, size int) ([]models.PullpushPost, error) {
	parsedURL, err := url.Parse(rc.BaseURL + REDDIT_SEARCH_PATH)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	params := parsedURL.Query()
	params.Set("query", term)
	params.Set("size", strconv.Itoa(size))
	parsedURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[RedditClient] Unexpected status code %d", resp.StatusCode)
	}

	var body models.PullpushResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse JSON response: %w", err)
	}
	return body.Data, nil
}
