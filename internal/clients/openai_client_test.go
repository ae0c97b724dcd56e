package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  People like it. Some complain about speed.  "},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", "gpt-test", server.URL, time.Second)
	text, err := client.Narrate(context.Background(), &models.Result{Query: "phone", Total: 3, Issues: []string{"slow"}})
	require.NoError(t, err)
	assert.Equal(t, "People like it. Some complain about speed.", text)
}

func TestNarrate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", "gpt-test", server.URL, time.Second)
	_, err := client.Narrate(context.Background(), &models.Result{})
	assert.Error(t, err)
}

func TestNarrativePrompt(t *testing.T) {
	prompt := narrativePrompt(&models.Result{
		Query:    "coffee",
		Total:    12,
		Issues:   []string{"expensive", "slow"},
		Trending: []string{"latte"},
		Sentiments: models.SentimentBuckets{
			Polarity: 0.25,
		},
	})

	assert.Contains(t, prompt, `"coffee" over 12 posts`)
	assert.Contains(t, prompt, "Average polarity: 0.25")
	assert.Contains(t, prompt, "expensive, slow")
	assert.Contains(t, prompt, "latte")
}
