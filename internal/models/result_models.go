package models

// Result is everything a single run produces.
type Result struct {
	RunID        string           `json:"run_id"`
	Query        string           `json:"query"`
	Total        int              `json:"total"`
	Sentiments   SentimentBuckets `json:"sentiments"`
	Summary      string           `json:"summary"`
	Narrative    string           `json:"narrative,omitempty"`
	Trending     []string         `json:"trending"`
	Issues       []string         `json:"issues"`
	Suggestions  []string         `json:"suggestions"`
	MostPositive string           `json:"most_positive"`
	MostNegative string           `json:"most_negative"`
	CSVPath      string           `json:"csv_path"`
	ChartPath    string           `json:"chart_path,omitempty"`
}
