package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, status int, content string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "llama3.1-8b",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func testConfig(baseURL string) *Config {
	config := DefaultCerebrasConfig()
	config.BaseURL = baseURL
	return config
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(DefaultCerebrasConfig(), "")
	assert.Error(t, err)
}

func TestOpenAIClient_GenerateContent(t *testing.T) {
	server, captured := newChatServer(t, http.StatusOK, "  A tailored summary.  ")

	client, err := NewOpenAIClient(testConfig(server.URL), "test-key")
	require.NoError(t, err)

	text, err := client.GenerateContent(context.Background(), "write a summary", TierLite)
	require.NoError(t, err)

	assert.Equal(t, "A tailored summary.", text)
	assert.Equal(t, "llama3.1-8b", (*captured)["model"])
	messages, ok := (*captured)["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
}

func TestOpenAIClient_GenerateJSON_StripsFences(t *testing.T) {
	server, _ := newChatServer(t, http.StatusOK, "```json\n[\"Docker\", \"Kubernetes\"]\n```")

	client, err := NewOpenAIClient(testConfig(server.URL), "test-key")
	require.NoError(t, err)

	text, err := client.GenerateJSON(context.Background(), "suggest", TierLite)
	require.NoError(t, err)
	assert.Equal(t, `["Docker", "Kubernetes"]`, text)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	server, _ := newChatServer(t, http.StatusInternalServerError, "")

	client, err := NewOpenAIClient(testConfig(server.URL), "test-key")
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "x", TierLite)
	assert.Error(t, err)
}

func TestOpenAIClient_EmptyContent(t *testing.T) {
	server, _ := newChatServer(t, http.StatusOK, "   ")

	client, err := NewOpenAIClient(testConfig(server.URL), "test-key")
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "x", TierLite)
	assert.Error(t, err)
}

func TestNewClient_Dispatch(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultCerebrasConfig(), "key")
	require.NoError(t, err)
	_, ok := client.(*OpenAIClient)
	assert.True(t, ok)
	assert.Equal(t, "llama3.1-8b", client.GetModel(TierLite))
	assert.NoError(t, client.Close())

	_, err = NewClient(context.Background(), &Config{Provider: "anthropic"}, "key")
	assert.Error(t, err)
}
