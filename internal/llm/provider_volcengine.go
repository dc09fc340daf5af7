package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

// VolcengineChat talks to the Volcengine Ark chat API.
//
// 文档:https://www.volcengine.com/docs/82379/1494384
type VolcengineChat struct {
	client *arkruntime.Client
	model  string
}

// NewVolcengineChat creates a chat driver for Volcengine Ark. model is the
// Ark endpoint or model id.
func NewVolcengineChat(apiKey, model string) (*VolcengineChat, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("volcengine api key is not configured")
	}
	return &VolcengineChat{
		client: arkruntime.NewClientWithApiKey(apiKey),
		model:  model,
	}, nil
}

func (v *VolcengineChat) ProviderID() string {
	return DriverVolcengine
}

func (v *VolcengineChat) Model() string {
	return v.model
}

// Complete sends the messages and returns the first choice's text. The
// temperature is left to the endpoint's configuration.
func (v *VolcengineChat) Complete(ctx context.Context, messages []Message, _ float32) (string, error) {
	logger := providerLogger(ctx, v.ProviderID(), v.model)

	chatMessages := make([]*volcModel.ChatCompletionMessage, 0, len(messages))
	for _, message := range messages {
		role := volcModel.ChatMessageRoleUser
		if message.Role == RoleSystem {
			role = volcModel.ChatMessageRoleSystem
		}
		chatMessages = append(chatMessages, &volcModel.ChatCompletionMessage{
			Role: role,
			Content: &volcModel.ChatCompletionMessageContent{
				StringValue: volcengine.String(message.Content),
			},
		})
	}

	resp, err := v.client.CreateChatCompletion(ctx, volcModel.CreateChatCompletionRequest{
		Model:    v.model,
		Messages: chatMessages,
	})
	if err != nil {
		logger.WithError(err).Warn("llm_chat_request_failed")
		return "", fmt.Errorf("volcengine chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		logger.Warn("llm_chat_empty_choices")
		return "", errors.New("chat completion returned no choices")
	}

	message := resp.Choices[0].Message
	if message.Content == nil || message.Content.StringValue == nil {
		logger.Warn("llm_chat_empty_content")
		return "", errors.New("chat completion returned no text")
	}

	content := *message.Content.StringValue
	logger.WithFields(logrus.Fields{
		"content_len":     len(content),
		"content_preview": logSnippet(content),
	}).Debug("llm_chat_completed")
	return content, nil
}
