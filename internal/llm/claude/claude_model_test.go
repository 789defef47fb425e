package claude_test

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
	"stylewriter/internal/llm/claude"
	"stylewriter/internal/port"
)

func TestModel_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body["model"])
		assert.Equal(t, "be formal", body["system"])
		assert.EqualValues(t, 2000, body["max_tokens"])

		msgs := body["messages"].([]interface{})
		require.Len(t, msgs, 1)
		assert.Equal(t, "user", msgs[0].(map[string]interface{})["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"  Rewritten.  "}],"stop_reason":"end_turn"}`))
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "test-key", DefaultModel: "claude-test"}, server.URL)
	out, err := m.Complete(context.Background(), port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleSystem, Content: "be formal"},
			{Role: port.RoleUser, Content: "hello"},
		},
		MaxTokens: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten.", out.Text)
	assert.Equal(t, "claude-test", out.ModelUsed)
}

func TestModel_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "12")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	_, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})
	require.Error(t, err)

	var rl *llm.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "claude", rl.Provider)
	assert.Equal(t, 12.0, rl.RetryAfter.Seconds())
}

func TestModel_Complete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	_, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestModel_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	m := claude.NewModelWithEndpoint(&config.LLMProviderConfig{APIKey: "k"}, server.URL)
	_, err := m.Complete(context.Background(), port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")

	var rl *llm.RateLimitError
	assert.False(t, errors.As(err, &rl))
}
