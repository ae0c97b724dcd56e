package insights

import "sort"

// counter counts words and remembers the order they were first seen, so that
// equal counts rank by first appearance.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(word string) {
	if _, ok := c.counts[word]; !ok {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

func (c *counter) top(n int) []string {
	words := make([]string, len(c.order))
	copy(words, c.order)

	sort.SliceStable(words, func(i, j int) bool {
		return c.counts[words[i]] > c.counts[words[j]]
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}
