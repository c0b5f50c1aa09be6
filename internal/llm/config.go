// Package llm provides centralized LLM configuration and client abstractions.
// Gemini is reached through its native SDK, every other provider through the
// OpenAI-compatible chat completions API.
package llm

import "strings"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short suggestions, summaries
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: parsing, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderCerebras is Cerebras inference through its OpenAI-compatible endpoint
	ProviderCerebras Provider = "cerebras"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// CerebrasBaseURL is the OpenAI-compatible API root for Cerebras
const CerebrasBaseURL = "https://api.cerebras.ai/v1"

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	BaseURL     string
	Temperature float32
	MaxTokens   int
}

// DefaultConfig returns the default configuration (Cerebras)
func DefaultConfig() *Config {
	return DefaultCerebrasConfig()
}

// DefaultCerebrasConfig returns the default Cerebras configuration
func DefaultCerebrasConfig() *Config {
	return &Config{
		Provider: ProviderCerebras,
		Models: map[ModelTier]string{
			TierLite:     "llama3.1-8b",
			TierStandard: "llama3.1-8b",
			TierAdvanced: "llama-3.3-70b",
		},
		BaseURL:     CerebrasBaseURL,
		Temperature: 0.1,
		MaxTokens:   1000,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.1,
		MaxTokens:   1000,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
		Temperature: 0.1,
		MaxTokens:   1000,
	}
}

// ConfigFor returns the default configuration for a provider name.
// Unknown names fall back to the default provider.
func ConfigFor(provider string) *Config {
	switch Provider(strings.ToLower(strings.TrimSpace(provider))) {
	case ProviderGemini:
		return DefaultGeminiConfig()
	case ProviderOpenAI:
		return DefaultOpenAIConfig()
	default:
		return DefaultCerebrasConfig()
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

// WithAllModels returns a new Config that uses one model for every tier
func (c *Config) WithAllModels(model string) *Config {
	out := c
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		out = out.WithModel(tier, model)
	}
	return out
}
