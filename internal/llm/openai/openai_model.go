package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stylewriter/internal/config"
	"stylewriter/internal/llm"
	"stylewriter/internal/port"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Model implements port.ChatModel using the OpenAI Chat Completions API.
type Model struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewModel creates an OpenAI chat model from a provider config.
func NewModel(cfg *config.LLMProviderConfig) *Model {
	return newModel(cfg, apiURL)
}

// NewModelWithEndpoint creates a model pointing at a custom API endpoint (for testing).
func NewModelWithEndpoint(cfg *config.LLMProviderConfig, endpoint string) *Model {
	return newModel(cfg, endpoint)
}

func newModel(cfg *config.LLMProviderConfig, endpoint string) *Model {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Model{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model               string    `json:"model"`
	Messages            []message `json:"messages"`
	Temperature         float64   `json:"temperature"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (m *Model) Complete(ctx context.Context, in port.ChatRequest) (*port.ChatResponse, error) {
	body := apiRequest{
		Model:               m.model,
		Temperature:         in.Temperature,
		MaxCompletionTokens: in.MaxTokens,
	}
	for _, msg := range in.Messages {
		body.Messages = append(body.Messages, message{Role: string(msg.Role), Content: msg.Content})
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, llm.Truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := llm.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, llm.NewRateLimitError("openai", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return parseResponse(respBody, m.model)
}

func parseResponse(body []byte, model string) (*port.ChatResponse, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("empty response from API (finish_reason: %s)", resp.Choices[0].FinishReason)
	}

	return &port.ChatResponse{Text: text, ModelUsed: model}, nil
}
