package domain

import "fmt"

// Provider identifies an LLM vendor.
type Provider string

// Supported providers.
const (
	ProviderGoogle Provider = "google"
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
)

// Model is one selectable model of a provider.
type Model struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProviderInfo describes a provider for clients. The first model is the default.
// Label is the catalog display text; Name is the bare vendor name used in
// user-facing notes.
type ProviderInfo struct {
	ID     Provider `json:"id"`
	Name   string   `json:"-"`
	Label  string   `json:"label"`
	Models []Model  `json:"models"`
}

// Providers lists the catalog in display order.
var Providers = []ProviderInfo{
	{
		ID:    ProviderGoogle,
		Name:  "Google",
		Label: "Google Gemini",
		Models: []Model{
			{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash (推薦)"},
			{ID: "gemini-3.0-flash", Name: "Gemini 3.0 Flash"},
			{ID: "gemini-3.0-pro", Name: "Gemini 3.0 Pro"},
		},
	},
	{
		ID:    ProviderOpenAI,
		Name:  "OpenAI",
		Label: "OpenAI",
		Models: []Model{
			{ID: "gpt-5.2", Name: "GPT-5.2 (推薦)"},
			{ID: "gpt-4.1", Name: "GPT-4.1"},
		},
	},
	{
		ID:    ProviderGroq,
		Name:  "Groq",
		Label: "Groq (免費)",
		Models: []Model{
			{ID: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B (推薦)"},
			{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B (最快)"},
		},
	},
}

// LookupProvider returns the catalog entry for p.
func LookupProvider(p Provider) (ProviderInfo, bool) {
	for _, info := range Providers {
		if info.ID == p {
			return info, true
		}
	}
	return ProviderInfo{}, false
}

// Name returns the bare vendor name of p, or p itself when unknown.
func (p Provider) Name() string {
	if info, ok := LookupProvider(p); ok {
		return info.Name
	}
	return string(p)
}

// ProviderConfig is the per-request vendor selection. It is never cached
// between requests.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	Model    string
}

// NewProviderConfig resolves defaults and validates a provider selection.
// An empty provider means google; an empty model means the provider's first model.
func NewProviderConfig(provider, apiKey, model string) (ProviderConfig, error) {
	p := Provider(provider)
	if p == "" {
		p = ProviderGoogle
	}

	info, ok := LookupProvider(p)
	if !ok {
		return ProviderConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	if apiKey == "" {
		return ProviderConfig{}, ErrMissingAPIKey
	}

	if model == "" {
		model = info.Models[0].ID
	}

	return ProviderConfig{Provider: p, APIKey: apiKey, Model: model}, nil
}

// Validate checks that the config can be used for a vendor call.
func (c ProviderConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if _, ok := LookupProvider(c.Provider); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, c.Provider)
	}
	return nil
}

// String omits the API key so configs are safe to log.
func (c ProviderConfig) String() string {
	return fmt.Sprintf("%s/%s", c.Provider, c.Model)
}
