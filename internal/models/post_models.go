package models

type Source string

const (
	SourceTwitter Source = "Twitter"
	SourceReddit  Source = "Reddit"
)

// Post is a cleaned piece of text tagged with the service it came from.
type Post struct {
	Source Source `json:"source"`
	Text   string `json:"text"`
}

type ScoredPost struct {
	Post
	Polarity float64 `json:"polarity"`
}
