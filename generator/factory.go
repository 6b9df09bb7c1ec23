package generator

import (
	"strings"

	"doc_auto_formatter/logger"
)

const (
	ProviderMock     = "mock"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

// NewLLMClient picks the text generation backend for settings. It never
// fails: a real provider without credentials, or an unknown provider,
// degrades to MockLLM with a warning so no request is ever billed by
// accident.
func NewLLMClient(settings LLMSettings, log *logger.Logger) LLMClient {
	if log == nil {
		log = logger.Nop()
	}
	provider := strings.ToLower(strings.TrimSpace(settings.Provider))
	switch provider {
	case "", ProviderMock:
		return MockLLM{}
	case ProviderOpenAI, ProviderDeepSeek:
		if strings.TrimSpace(settings.APIKey) == "" {
			log.Warn("llm api key not set, using mock provider", "provider", provider)
			return MockLLM{}
		}
		// DeepSeek exposes an OpenAI-compatible API but has no default endpoint here.
		if provider == ProviderDeepSeek && settings.BaseURL == "" {
			log.Warn("deepseek requires base_url, using mock provider", "provider", provider)
			return MockLLM{}
		}
		client, err := NewOpenAILLMFromConfig(&settings)
		if err != nil {
			log.Warn("llm client init failed, using mock provider", "provider", provider, "error", err)
			return MockLLM{}
		}
		log.Info("llm provider selected", "provider", provider, "model", client.Model)
		return client
	default:
		log.Warn("unknown llm provider, using mock provider", "provider", settings.Provider)
		return MockLLM{}
	}
}
