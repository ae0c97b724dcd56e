package models

// PullpushResponse is the body of a pullpush.io reddit search.
type PullpushResponse struct {
	Data []PullpushPost `json:"data"`
}

type PullpushPost struct {
	ID         string  `json:"id"`
	Subreddit  string  `json:"subreddit"`
	Author     string  `json:"author"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	CreatedUTC float64 `json:"created_utc"`
}
