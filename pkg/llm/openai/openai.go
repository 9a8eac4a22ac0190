// Package openai provides an llm.Provider backed by the OpenAI SDK, for
// running extraction against OpenAI-compatible backends instead of the
// default Anthropic endpoint.
package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/grifmang/memsift/pkg/llm"
)

const defaultModel = "gpt-4o"

// Provider implements llm.Provider for OpenAI-compatible APIs.
type Provider struct {
	client openai.Client
	model  string
}

// ProviderOption is a function that configures a Provider.
type ProviderOption func(*settings)

type settings struct {
	model   string
	baseURL string
}

// WithModel sets the model to use for completions.
func WithModel(model string) ProviderOption {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithBaseURL sets a custom base URL for OpenAI-compatible APIs.
// This enables using Azure OpenAI, local models, or other compatible services.
func WithBaseURL(baseURL string) ProviderOption {
	return func(s *settings) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// NewProvider creates a new OpenAI provider with the given API key.
// If apiKey is empty, it falls back to the OPENAI_API_KEY environment
// variable.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (provide via parameter or OPENAI_API_KEY environment variable)")
	}

	s := settings{model: defaultModel}
	for _, opt := range opts {
		opt(&s)
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if s.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(s.baseURL))
	}

	return &Provider{
		client: openai.NewClient(clientOpts...),
		model:  s.model,
	}, nil
}

// Complete sends a single user prompt and returns the response text.
// Upstream HTTP failures are normalized to *llm.APIError; transport
// errors pass through untouched.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(p.model),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &llm.APIError{Status: apiErr.StatusCode, Body: apiErr.RawJSON()}
		}
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: response contained no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// GetModel returns the model name being used.
func (p *Provider) GetModel() string {
	return p.model
}
