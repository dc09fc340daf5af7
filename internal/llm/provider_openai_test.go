package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebar/internal/config"
)

const chatURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"

func activateHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestNewChatClientWithoutKey(t *testing.T) {
	client, err := NewChatClient(config.Config{LLMDriver: "openai"})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewChatClientUnknownDriver(t *testing.T) {
	_, err := NewChatClient(config.Config{LLMDriver: "carrier-pigeon", OpenAIAPIKey: "sk-test"})
	assert.Error(t, err)
}

func TestNewChatClientDashscopeDefaults(t *testing.T) {
	client, err := NewChatClient(config.Config{LLMDriver: "openai", DashscopeAPIKey: "sk-test"})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, DriverDashscope, client.ProviderID())
	assert.Equal(t, DefaultModel, client.Model())
}

func TestOpenAIChatComplete(t *testing.T) {
	activateHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, chatURL,
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"name\":\"Mojito\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))

	client, err := NewOpenAIChat("sk-test", config.DefaultLLMBaseURL, "qwen-plus")
	require.NoError(t, err)

	reply, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: systemPersona},
		{Role: RoleUser, Content: "hi"},
	}, 0.7)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Mojito"}`, reply)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestOpenAIChatAPIError(t *testing.T) {
	activateHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, chatURL,
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))

	client, err := NewOpenAIChat("sk-bad", config.DefaultLLMBaseURL, "qwen-plus")
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 0.7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAIChatEmptyChoices(t *testing.T) {
	activateHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, chatURL,
		httpmock.NewStringResponder(http.StatusOK, `{"id": "x", "choices": []}`))

	client, err := NewOpenAIChat("sk-test", config.DefaultLLMBaseURL, "qwen-plus")
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 0.7)
	assert.Error(t, err)
}

func TestGatewayOverHTTP(t *testing.T) {
	activateHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, chatURL,
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error": {"message": "upstream down"}}`))

	client, err := NewOpenAIChat("sk-test", config.DefaultLLMBaseURL, "qwen-plus")
	require.NoError(t, err)

	resp := NewGateway(client, 0).Suggest(context.Background(), nil, "anything")
	assert.Nil(t, resp.Payload)
	assert.NotEmpty(t, resp.Error)
}
