package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGeneratorInterface is the single operation the service needs from an
// external model: prompt text in, reply text out.
type TextGeneratorInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewTextGenerator picks the client for provider ("gemini" or "openai").
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiTextClient(apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
