package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/sentimeter/internal/models"
)

const openAIRequestTimeout = 60 * time.Second

type OpenAIClient struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIClient builds a chat client. baseURL is only set in tests.
func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if timeout <= 0 {
		timeout = openAIRequestTimeout
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.String("model", model),
		slog.Duration("timeout", timeout))

	return &OpenAIClient{
		Client: openai.NewClientWithConfig(config),
		Model:  model,
	}
}

// Narrate asks the model for a short plain-language read of a finished result.
func (oc *OpenAIClient) Narrate(ctx context.Context, r *models.Result) (string, error) {
	resp, err := oc.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: oc.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write two-sentence plain-English readouts of social media sentiment reports. No lists, no markdown.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: narrativePrompt(r),
			},
		},
		Temperature: 0.3,
		MaxTokens:   160,
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAIClient] chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("[OpenAIClient] empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func narrativePrompt(r *models.Result) string {
	s := r.Sentiments
	var b strings.Builder
	fmt.Fprintf(&b, "Search term: %q over %d posts.\n", r.Query, r.Total)
	fmt.Fprintf(&b, "Average polarity: %.2f.\n", s.Polarity)
	fmt.Fprintf(&b, "Strongly positive %.2f%%, positive %.2f%%, weakly positive %.2f%%, neutral %.2f%%, weakly negative %.2f%%, negative %.2f%%, strongly negative %.2f%%.\n",
		s.StronglyPositive, s.Positive, s.WeaklyPositive, s.Neutral, s.WeaklyNegative, s.Negative, s.StronglyNegative)
	if len(r.Issues) > 0 {
		fmt.Fprintf(&b, "Frequent complaint words: %s.\n", strings.Join(r.Issues, ", "))
	}
	if len(r.Trending) > 0 {
		fmt.Fprintf(&b, "Trending words: %s.\n", strings.Join(r.Trending, ", "))
	}
	return b.String()
}
