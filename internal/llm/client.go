// Package llm invokes the hosted chat-completion endpoint with the fixed
// decoding parameters of each prompt template.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/halcyon-ventures/deckscout/internal/logger"
	"github.com/halcyon-ventures/deckscout/internal/prompt"
)

const defaultTimeout = 60 * time.Second

// UpstreamError indicates the model endpoint call failed: network, auth,
// quota or timeout. The caller degrades the affected sub-result to defaults
// rather than aborting the document.
type UpstreamError struct {
	Model string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model call to %s failed: %v", e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client sends built prompts to the OpenAI chat completion API.
type Client struct {
	client  openai.Client
	timeout time.Duration
	log     logger.Logger
}

// NewClient creates a client with an explicit per-call timeout. Timeout
// expiry surfaces as an UpstreamError; indefinite blocking on the upstream
// is an availability hazard.
func NewClient(apiKey string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		timeout: timeout,
		log:     log,
	}
}

// Complete sends a single user message and returns the raw completion text.
// Exactly one outbound network call per invocation, rate limited and retried
// on 429s by RateLimitedCall.
func (c *Client) Complete(ctx context.Context, promptText string, cfg prompt.DecodingConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.log.Debug("Calling model %s (prompt length: %d chars)", cfg.Model, len(promptText))

	completion, err := RateLimitedCall(ctx, estimateTokens(promptText, cfg.MaxTokens), c.log, func(ctx context.Context) (*openai.ChatCompletion, error) {
		return c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(cfg.Model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(promptText),
			},
			Temperature: openai.Float(cfg.Temperature),
			MaxTokens:   openai.Int(cfg.MaxTokens),
		})
	})
	if err != nil {
		return "", &UpstreamError{Model: cfg.Model, Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &UpstreamError{Model: cfg.Model, Err: errors.New("completion has no choices")}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// estimateTokens approximates the token cost of one call for the rate
// limiter: ~4 characters per input token plus the output budget.
func estimateTokens(promptText string, maxTokens int64) int {
	return len(promptText)/4 + int(maxTokens)
}
