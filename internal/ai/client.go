// Package ai implements feedback classification and summarization on top of
// an external inference endpoint.
//
// The model's output is treated as an untrusted payload: every enumerated
// field is validated against its domain before use, and any call or parse
// failure falls back to deterministic keyword rules. Classification is total —
// it always produces a label.
package ai

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/reflectlabs/feedback-analyzer/internal/config"
)

// CompletionRequest is a single prompt sent to the inference endpoint.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Client is the Anthropic-backed inference client.
type Client struct {
	api   anthropic.Client
	model string
}

// NewClient creates an inference client from AIConfig.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model: cfg.Model,
	}
}

// Complete sends one prompt and returns the model's text response.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   req.MaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("inference api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty inference response")
	}

	return msg.Content[0].Text, nil
}
