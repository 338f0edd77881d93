// Package openai provides a core.Classifier backed by the OpenAI Chat
// Completions API. It sends the shared selector instruction as the system
// message and returns the raw completion text; normalization and set
// membership validation stay in the router.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/campuscare/campuscare/classifier"
)

// Options configure the OpenAI classifier adapter. Temperature is kept low
// and the token budget tiny: the expected output is a single tool name.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Classifier wraps the OpenAI Chat Completions API behind core.Classifier.
type Classifier struct {
	client *openai.Client
	opts   Options
}

// NewClassifier creates a new OpenAI classifier using the official client.
// The API key is read from the environment by the SDK.
func NewClassifier(optFns ...func(o *Options)) *Classifier {
	client := openai.NewClient()
	return NewClassifierFromClient(&client, optFns...)
}

// NewClassifierFromClient creates a new OpenAI classifier from an existing client.
func NewClassifierFromClient(client *openai.Client, optFns ...func(o *Options)) *Classifier {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.3,
		MaxCompletionTokens: 50,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{client: client, opts: opts}
}

// Classify implements core.Classifier. Errors (transport, empty choices) are
// returned as-is for the router to recover from.
func (c *Classifier) Classify(ctx context.Context, message string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifier.SelectorInstruction()),
			openai.UserMessage(message),
		},
		Model:               c.opts.Model,
		Temperature:         openai.Float(c.opts.Temperature),
		MaxCompletionTokens: openai.Int(c.opts.MaxCompletionTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
