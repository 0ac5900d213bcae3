package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash-exp"

// Backend is the remote generation collaborator: one composed instruction
// string in, generated text out. Network, auth and quota errors are all
// reported as opaque failures - the generator treats every one of them as
// "fall back".
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiBackend implements Backend over Google's Gemini API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// GeminiOption configures a GeminiBackend.
type GeminiOption func(*GeminiBackend)

// WithModel overrides the default model.
func WithModel(model string) GeminiOption {
	return func(b *GeminiBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// NewGeminiBackend creates a backend authenticated with the given API key.
// The key is not validated here; a bad key surfaces on the first Complete.
func NewGeminiBackend(ctx context.Context, credential string, opts ...GeminiOption) (*GeminiBackend, error) {
	if credential == "" {
		return nil, fmt.Errorf("%w: credential is required", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(credential))
	if err != nil {
		return nil, errors.Join(ErrBackendFailure, err)
	}

	b := &GeminiBackend{client: client, model: defaultModel}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Close releases the underlying API client.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// Complete sends one generation request and returns the trimmed response
// text. An empty candidate list or blank text is an error so the caller can
// route to its fallback.
func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.GenerativeModel(b.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Join(ErrBackendFailure, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
