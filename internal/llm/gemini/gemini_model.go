package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"stylewriter/internal/config"
	"stylewriter/internal/llm"
	"stylewriter/internal/port"
)

// Model implements port.ChatModel using the Gemini API through the genai SDK.
type Model struct {
	client *genai.Client
	model  string
}

// NewModel creates a Gemini chat model from a provider config.
func NewModel(ctx context.Context, cfg *config.LLMProviderConfig) (*Model, error) {
	return newModel(ctx, cfg, "")
}

// NewModelWithEndpoint creates a model pointing at a custom base URL (for testing).
func NewModelWithEndpoint(ctx context.Context, cfg *config.LLMProviderConfig, baseURL string) (*Model, error) {
	return newModel(ctx, cfg, baseURL)
}

func newModel(ctx context.Context, cfg *config.LLMProviderConfig, baseURL string) (*Model, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: missing api key")
	}
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Model{client: client, model: model}, nil
}

func (m *Model) Complete(ctx context.Context, in port.ChatRequest) (*port.ChatResponse, error) {
	system, turns := llm.SplitSystem(in.Messages)

	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == port.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(in.Temperature)),
	}
	if in.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(in.MaxTokens)
	}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	res, err := m.client.Models.GenerateContent(ctx, m.model, contents, gc)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, llm.NewRateLimitError("gemini", err, 0)
		}
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return nil, fmt.Errorf("empty response from API")
	}
	return &port.ChatResponse{Text: text, ModelUsed: m.model}, nil
}
