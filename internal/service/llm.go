package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/pageza/munchai/backend/internal/metrics"
)

const (
	// CompletionModel is the model every chat prompt is sent to
	CompletionModel = "claude-3-5-haiku-20241022"
	// CompletionMaxTokens caps the length of a completion
	CompletionMaxTokens = 1024
)

// ErrEmptyCompletion is returned when the API answers without any text block
var ErrEmptyCompletion = errors.New("no text content in completion")

// LLMService sends prompts to the Anthropic Messages API
type LLMService struct {
	client anthropic.Client
	log    *zap.Logger
}

// NewLLMService creates a new LLMService instance. An empty baseURL keeps
// the SDK default endpoint.
func NewLLMService(apiKey, baseURL string, log *zap.Logger) (*LLMService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY must be set")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &LLMService{
		client: anthropic.NewClient(opts...),
		log:    log,
	}, nil
}

// Complete sends prompt as a single user message and returns the first text
// block of the reply unmodified.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(CompletionModel),
		MaxTokens: CompletionMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	metrics.CompletionDuration.WithLabelValues(metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			s.log.Warn("Messages API returned an error", zap.Int("status", apiErr.StatusCode))
		}
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	s.log.Debug("Completion received",
		zap.String("id", msg.ID),
		zap.String("stop_reason", string(msg.StopReason)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", ErrEmptyCompletion
}
