package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiConfig selects the Gemini backend. An API key takes precedence over
// the Vertex AI project.
type GeminiConfig struct {
	ProjectID string
	Region    string
	APIKey    string
	Model     string
}

// Enabled reports whether enough is configured to create a client.
func (c GeminiConfig) Enabled() bool {
	return c.APIKey != "" || c.ProjectID != ""
}

// GeminiClient wraps the Google GenAI client.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client with an API key, or with Application
// Default Credentials on Vertex AI (GOOGLE_APPLICATION_CREDENTIALS points to
// the service account key file).
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.APIKey == "" {
		region := cfg.Region
		if region == "" {
			region = defaultRegion
		}
		cc = &genai.ClientConfig{
			Project:  cfg.ProjectID,
			Location: region,
			Backend:  genai.BackendVertexAI,
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &GeminiClient{
		client:    client,
		modelName: model,
	}, nil
}

// Model returns the model used for suggestions.
func (g *GeminiClient) Model() string { return g.modelName }

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}
