package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/config"
	"stylewriter/internal/llm"
	"stylewriter/internal/llm/openai"
	"stylewriter/internal/port"
)

func TestModel_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])
		assert.EqualValues(t, 0.7, body["temperature"])
		assert.EqualValues(t, 512, body["max_completion_tokens"])

		msgs := body["messages"].([]interface{})
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]interface{})["role"])
		assert.Equal(t, "hello", msgs[1].(map[string]interface{})["content"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hi there."},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	m := openai.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "test-key", DefaultModel: "gpt-test"}, server.URL)
	out, err := m.Complete(context.Background(), port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleSystem, Content: "sys"},
			{Role: port.RoleUser, Content: "hello"},
		},
		Temperature: 0.7,
		MaxTokens:   512,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there.", out.Text)
	assert.Equal(t, "gpt-test", out.ModelUsed)
}

func TestModel_Complete_DefaultModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o", body["model"])
		_, hasMax := body["max_completion_tokens"]
		assert.False(t, hasMax)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	m := openai.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	out, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestModel_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	m := openai.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	_, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})

	var rl *llm.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "openai", rl.Provider)
	assert.Equal(t, 60.0, rl.RetryAfter.Seconds())
}

func TestModel_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	m := openai.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	_, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
