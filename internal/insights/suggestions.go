package insights

import "fmt"

var suggestionMap = map[string]string{
	"slow":      "Improve performance and optimize speed.",
	"expensive": "Lower pricing or add cheaper options.",
	"confusing": "Enhance UI/UX for better clarity.",
	"crash":     "Fix stability and crashing issues.",
	"bug":       "Fix reported bugs.",
	"missing":   "Add important missing features.",
	"error":     "Improve error handling.",
	"poor":      "Enhance product quality.",
}

// Suggestions maps each issue keyword to a canned improvement sentence.
func Suggestions(issues []string) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, Suggest(issue))
	}
	return out
}

func Suggest(issue string) string {
	if s, ok := suggestionMap[issue]; ok {
		return s
	}
	return fmt.Sprintf("Investigate and improve issues related to '%s'.", issue)
}
