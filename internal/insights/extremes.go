package insights

import "github.com/spacesedan/sentimeter/internal/models"

const NoData = "No data"

// ExtremeComments returns the text of the highest and lowest scoring posts.
// The first post wins ties on both ends.
func ExtremeComments(posts []models.ScoredPost) (mostPositive, mostNegative string) {
	if len(posts) == 0 {
		return NoData, NoData
	}

	best, worst := posts[0], posts[0]
	for _, p := range posts[1:] {
		if p.Polarity > best.Polarity {
			best = p
		}
		if p.Polarity < worst.Polarity {
			worst = p
		}
	}
	return best.Text, worst.Text
}
