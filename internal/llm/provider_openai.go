package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenAIChat talks to any OpenAI-compatible chat endpoint, DashScope's
// compatible mode included.
type OpenAIChat struct {
	client     *openai.Client
	model      string
	providerID string
}

// NewOpenAIChat creates a chat driver for an OpenAI-compatible endpoint.
func NewOpenAIChat(apiKey, baseURL, model string) (*OpenAIChat, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat api key is not configured")
	}

	openAIConfig := openai.DefaultConfig(apiKey)
	if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
		openAIConfig.BaseURL = trimmed
	}
	openAIConfig.HTTPClient = &http.Client{Timeout: RequestTimeout}

	providerID := DriverOpenAI
	if strings.Contains(openAIConfig.BaseURL, "dashscope") {
		providerID = DriverDashscope
	}

	return &OpenAIChat{
		client:     openai.NewClientWithConfig(openAIConfig),
		model:      model,
		providerID: providerID,
	}, nil
}

func (c *OpenAIChat) ProviderID() string {
	return c.providerID
}

func (c *OpenAIChat) Model() string {
	return c.model
}

// Complete sends the messages and returns the first choice's content.
func (c *OpenAIChat) Complete(ctx context.Context, messages []Message, temperature float32) (string, error) {
	logger := providerLogger(ctx, c.ProviderID(), c.model)

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, message := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			logger.WithFields(logrus.Fields{
				"status":  apiErr.HTTPStatusCode,
				"message": logSnippet(apiErr.Message),
			}).Warn("llm_chat_api_error")
			return "", fmt.Errorf("chat completion failed with status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		logger.WithError(err).Warn("llm_chat_request_failed")
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		logger.Warn("llm_chat_empty_choices")
		return "", errors.New("chat completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	logger.WithFields(logrus.Fields{
		"content_len":     len(content),
		"content_preview": logSnippet(content),
		"total_tokens":    resp.Usage.TotalTokens,
	}).Debug("llm_chat_completed")
	return content, nil
}
