// Package claude calls Anthropic Claude for text and image classification.
package claude

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/unievent-backend/internal/adapter/provider/breaker"
	"github.com/heartmarshall/unievent-backend/internal/domain"
)

const defaultMaxTokens = 512

// Config configures the Claude client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Breaker breaker.Settings
	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string
}

// Client sends single-turn prompts to Claude behind a circuit breaker.
type Client struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker[string]
	log     *slog.Logger
}

// New creates a Claude client. The SDK's own retries are disabled.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	log := logger.With("adapter", "claude")
	return &Client{
		client:  anthropic.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		cb:      breaker.New[string]("claude", cfg.Breaker, log),
		log:     log,
	}
}

// Complete sends system and prompt, plus image when non-nil, and returns
// the concatenated text of the reply.
func (c *Client) Complete(ctx context.Context, system, prompt string, image *domain.Image) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)}
	if image != nil && len(image.Data) > 0 {
		blocks = append(blocks, anthropic.NewImageBlockBase64(image.ContentType, base64.StdEncoding.EncodeToString(image.Data)))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	start := time.Now()
	text, err := c.cb.Execute(func() (string, error) {
		msg, err := c.client.Messages.New(ctx, params)
		if err != nil {
			return "", err
		}

		var sb strings.Builder
		for _, block := range msg.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			return "", fmt.Errorf("empty response")
		}
		return sb.String(), nil
	})
	if err != nil {
		return "", fmt.Errorf("claude messages: %w", breaker.MarkUnavailable(err))
	}

	c.log.DebugContext(ctx, "claude completion",
		slog.String("model", c.model),
		slog.Bool("with_image", image != nil),
		slog.Duration("duration", time.Since(start)),
	)
	return text, nil
}
