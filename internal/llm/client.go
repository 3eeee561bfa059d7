// Package llm provides an optional OpenAI-backed text generator for
// suggestion augmentation. Credentials may legitimately be absent; the
// constructor reports that as ErrUnavailable so callers can run without
// augmentation instead of treating it as a failure.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// ErrUnavailable is returned by New when no API key is configured.
var ErrUnavailable = errors.New("llm: no API key configured")

// maxRetryBudget caps the bounded retry count the client owns.
const maxRetryBudget = 2

// Config holds everything needed to reach the completion endpoint.
type Config struct {
	APIKey     string
	BaseURL    string // empty means the SDK default
	Model      string
	Timeout    time.Duration
	MaxRetries int // capped at 2
}

// Client is a blocking request-response wrapper around the chat completion
// API with a timeout and a small bounded retry count.
type Client struct {
	client     openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	log        zerolog.Logger
}

// New builds a client, or reports ErrUnavailable when cfg carries no key.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnavailable
	}
	if cfg.Model == "" {
		return nil, errors.New("llm: model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	// The SDK has its own retry machinery; disabled so the budget here is
	// the only one.
	opts = append(opts, option.WithMaxRetries(0))

	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	if retries > maxRetryBudget {
		retries = maxRetryBudget
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		client:     openai.NewClient(opts...),
		model:      cfg.Model,
		timeout:    timeout,
		maxRetries: retries,
		log:        log,
	}, nil
}

// GenerateText sends the prompt and returns the raw completion text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(c.model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
		})
		if err != nil {
			lastErr = err
			c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("llm request failed")
			continue
		}
		if len(completion.Choices) == 0 {
			return "", errors.New("llm: completion contained no choices")
		}
		return completion.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("llm: request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
