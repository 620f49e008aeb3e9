package agixt

import (
	"context"
)

// ProvidersService exposes the inference and embedding providers the server
// supports.
type ProvidersService struct {
	client *Client
}

// List returns all provider names.
func (s *ProvidersService) List(ctx context.Context) ([]string, error) {
	var resp struct {
		Providers []string `json:"providers"`
	}
	if err := s.client.get(ctx, "/api/provider", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Providers, nil
}

// ListByService returns the providers that implement a service such as
// "llm", "tts", "image", "embeddings", "transcription", or "translation".
func (s *ProvidersService) ListByService(ctx context.Context, service string) ([]string, error) {
	var resp struct {
		Providers []string `json:"providers"`
	}
	if err := s.client.get(ctx, "/api/providers/service/"+pathEscape(service), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Providers, nil
}

// Settings returns a provider's setting names and default values.
func (s *ProvidersService) Settings(ctx context.Context, providerName string) (map[string]any, error) {
	var resp struct {
		Settings map[string]any `json:"settings"`
	}
	if err := s.client.get(ctx, "/api/provider/"+pathEscape(providerName), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Settings, nil
}

// EmbeddingProviders returns the providers that can produce embeddings.
func (s *ProvidersService) EmbeddingProviders(ctx context.Context) ([]string, error) {
	var resp struct {
		Providers []string `json:"providers"`
	}
	if err := s.client.get(ctx, "/api/embedding_providers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Providers, nil
}

// Embedders returns embedder details keyed by provider name.
func (s *ProvidersService) Embedders(ctx context.Context) (map[string]any, error) {
	var resp struct {
		Embedders map[string]any `json:"embedders"`
	}
	if err := s.client.get(ctx, "/api/embedders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Embedders, nil
}
