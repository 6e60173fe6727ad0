// Package openaimod implements the classification collaborators on top of
// the OpenAI API: the moderations endpoint as prescreen, a chat model as the
// reasoning classifier, the image edit endpoint as a visual check and
// Whisper for transcription.
package openaimod

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const reviewPromptTemplate = `As an AI content moderation assistant, analyze the following text for compliance with community guidelines. %s

Consider the context and use of idiomatic expressions. Do not flag content that uses figurative language or common expressions unless they genuinely promote disallowed content. Focus on the overall intent and meaning of the text.

Identify any issues related to disallowed content such as harassment, hate speech, explicit content, privacy violations, and misinformation. Provide a decision ('Approved' or 'Rejected'), reasons, and relevant tags.

The response should be in English, regardless of the text's language.

Please return your response in the following JSON format:

{
    "decision": "Approved" or "Rejected",
    "reason": "Brief explanation of the decision",
    "tags": ["tag1", "tag2", "tag3"]
}

Text:
%s

Response:`

type Config struct {
	APIKey string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// ReviewModel is the chat model making the moderation decisions.
	ReviewModel string
	// TranscriptionModel is the speech-to-text model.
	TranscriptionModel string
}

// Client wraps a single OpenAI API client behind the moderation collaborator
// interfaces. Credentials arrive through Config at construction time; there
// is no package-level client state.
type Client struct {
	api  *openai.Client
	http *http.Client
	cfg  Config
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.ReviewModel == "" {
		cfg.ReviewModel = openai.GPT4oMini
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = openai.Whisper1
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	apiConfig.BaseURL = cfg.BaseURL

	return &Client{
		api:  openai.NewClientWithConfig(apiConfig),
		http: &http.Client{Timeout: 2 * time.Minute},
		cfg:  cfg,
	}
}

// Prescreen runs the baseline moderation endpoint and reports the flagged
// signal. Callers use it for instrumentation only.
func (c *Client) Prescreen(ctx context.Context, text string) (bool, error) {
	resp, err := c.api.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: openai.ModerationTextLatest,
	})
	if err != nil {
		return false, fmt.Errorf("moderations endpoint: %w", err)
	}

	if len(resp.Results) == 0 {
		return false, nil
	}

	return resp.Results[0].Flagged, nil
}

// Review submits the text and policy instructions to the reasoning model and
// returns the raw response content, expected to be the JSON verdict object.
func (c *Client) Review(ctx context.Context, text string, instructions string) (string, error) {
	prompt := fmt.Sprintf(reviewPromptTemplate, instructions, text)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ReviewModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		// A literal zero is dropped by omitempty and the API would fall back
		// to its default temperature; the smallest nonzero value keeps
		// decoding deterministic.
		Temperature: math.SmallestNonzeroFloat32,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("chat completions endpoint: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completions endpoint: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
