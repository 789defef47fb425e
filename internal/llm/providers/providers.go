// Package providers registers the built-in chat model adapters with the llm factory.
package providers

import (
	"context"
	"sync"

	"stylewriter/internal/config"
	"stylewriter/internal/llm"
	"stylewriter/internal/llm/claude"
	"stylewriter/internal/llm/gemini"
	"stylewriter/internal/llm/openai"
	"stylewriter/internal/port"
)

var once sync.Once

// Register makes the claude, openai and gemini providers available to llm.NewModel.
func Register() {
	once.Do(func() {
		llm.RegisterProvider("claude", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
			return claude.NewModel(cfg), nil
		})
		llm.RegisterProvider("openai", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
			return openai.NewModel(cfg), nil
		})
		llm.RegisterProvider("gemini", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
			return gemini.NewModel(context.Background(), cfg)
		})
	})
}

// NewChatModel registers the built-in providers and builds the configured chain.
func NewChatModel(cfg *config.LLMConfig) (port.ChatModel, error) {
	Register()
	return llm.NewChain(cfg)
}
