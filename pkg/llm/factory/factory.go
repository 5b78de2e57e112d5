package factory

import (
	"fmt"

	"memory-vault-be/pkg/llm"
	"memory-vault-be/pkg/llm/ollama"
	"memory-vault-be/pkg/llm/openai"
)

type ProviderConfig struct {
	Provider      string
	OpenAIKey     string
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
