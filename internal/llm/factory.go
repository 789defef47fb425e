package llm

import (
	"fmt"
	"sort"
	"sync"

	"stylewriter/internal/config"
	"stylewriter/internal/port"
)

// ProviderFactory creates a ChatModel from a provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.ChatModel, error)

var (
	mu        sync.RWMutex
	providers = map[string]ProviderFactory{}
)

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = factory
}

// Providers lists the registered provider names.
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewModel creates a ChatModel from a provider config using the registered factory.
func NewModel(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
	mu.RLock()
	factory, ok := providers[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewChain builds the configured primary model, wrapped in a FallbackModel
// when secondary or tertiary providers are set.
func NewChain(cfg *config.LLMConfig) (port.ChatModel, error) {
	tiers := []*config.LLMProviderConfig{cfg.PrimaryConfig()}
	if s := cfg.SecondaryConfig(); s != nil {
		tiers = append(tiers, s)
	}
	if t := cfg.TertiaryConfig(); t != nil {
		tiers = append(tiers, t)
	}

	models := make([]port.ChatModel, 0, len(tiers))
	names := make([]string, 0, len(tiers))
	for _, tier := range tiers {
		m, err := NewModel(tier)
		if err != nil {
			return nil, fmt.Errorf("llm.NewChain: %s: %w", tier.Provider, err)
		}
		models = append(models, m)
		names = append(names, tier.Provider)
	}
	if len(models) == 1 {
		return models[0], nil
	}
	return NewFallbackModel(models, names), nil
}
