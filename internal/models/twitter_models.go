package models

// TwitterSearchResponse is the body of a v2 recent search page.
type TwitterSearchResponse struct {
	Data   []Tweet           `json:"data"`
	Meta   TwitterSearchMeta `json:"meta"`
	Errors []TwitterAPIError `json:"errors,omitempty"`
}

type Tweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type TwitterSearchMeta struct {
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}

type TwitterAPIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
