// Package anthropic provides a core.Classifier backed by the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/campuscare/campuscare/classifier"
)

// Options configure the Anthropic classifier adapter (model id, temperature,
// max tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Classifier wraps the Anthropic Messages API behind core.Classifier.
type Classifier struct {
	client *anthropic.Client
	opts   Options
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.3,
		MaxTokens:   50,
	}
}

// NewClassifier creates a new Anthropic classifier using the official client.
func NewClassifier(optFns ...func(o *Options)) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Classifier{client: &client, opts: opts}
}

// NewClassifierFromClient creates a new Anthropic classifier from an existing client.
func NewClassifierFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Classifier {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{client: client, opts: opts}
}

// Classify implements core.Classifier. Text blocks in the reply are
// concatenated; validation of the label stays in the router.
func (c *Classifier) Classify(ctx context.Context, message string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.opts.Model,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: anthropic.Float(c.opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: classifier.SelectorInstruction()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content returned")
	}
	return b.String(), nil
}
