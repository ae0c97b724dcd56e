package clients

import (
	"errors"
	"time"
)

const (
	USER_AGENT = "sentimeter/1.0 (+https://github.com/spacesedan/sentimeter)"

	TWITTER_SEARCH_PATH  = "/tweets/search/recent"
	TWITTER_PAGE_MAX     = 100
	TWITTER_PAGE_MIN     = 10
	REDDIT_SEARCH_PATH   = "/reddit/search"
	DEFAULT_HTTP_TIMEOUT = 10 * time.Second
)

// ErrRateLimited is returned when the microblog API answers 429.
var ErrRateLimited = errors.New("rate limit exceeded")
