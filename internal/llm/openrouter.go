package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// openRouterTitle names the app on the OpenRouter activity page.
	openRouterTitle = "Leo Study"
)

// OpenRouterProvider talks to OpenRouter through the OpenAI SDK.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Model IDs are passed through as given, e.g. "anthropic/claude-sonnet-4.5".
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client := &http.Client{Transport: titledTransport{base: http.DefaultTransport, title: openRouterTitle}}
	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible("openrouter", cfg.APIKey, baseURL, cfg.Model, client),
	}, nil
}

// titledTransport adds OpenRouter's app attribution header.
type titledTransport struct {
	base  http.RoundTripper
	title string
}

func (t titledTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(r)
}
