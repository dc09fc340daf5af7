package llm

import (
	"fmt"
	"strings"

	"homebar/internal/config"
)

const (
	DriverOpenAI     = "openai"
	DriverDashscope  = "dashscope"
	DriverVolcengine = "volcengine"
)

// NewChatClient builds the configured chat driver. Without a credential it
// returns nil, which the gateway treats as placeholder mode.
func NewChatClient(cfg config.Config) (ChatClient, error) {
	apiKey := cfg.LLMAPIKey()
	if apiKey == "" {
		return nil, nil
	}

	model := strings.TrimSpace(cfg.LLMModel)
	if model == "" {
		model = DefaultModel
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.LLMDriver))
	switch driver {
	case "", DriverOpenAI, DriverDashscope:
		baseURL := strings.TrimSpace(cfg.LLMBaseURL)
		if baseURL == "" {
			baseURL = config.DefaultLLMBaseURL
		}
		client, err := NewOpenAIChat(apiKey, baseURL, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case DriverVolcengine:
		client, err := NewVolcengineChat(apiKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported llm driver: %s", cfg.LLMDriver)
	}
}
