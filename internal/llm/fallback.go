package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"stylewriter/internal/port"
)

// circuitState tracks rate-limit backoff for a single model.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackModel tries models in order, skipping those with open circuits.
// It implements port.ChatModel.
type FallbackModel struct {
	models   []port.ChatModel
	circuits []*circuitState
	names    []string
}

// NewFallbackModel creates a FallbackModel from an ordered list of models and their names.
func NewFallbackModel(models []port.ChatModel, names []string) *FallbackModel {
	circuits := make([]*circuitState, len(models))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackModel{
		models:   models,
		circuits: circuits,
		names:    names,
	}
}

func (f *FallbackModel) Complete(ctx context.Context, req port.ChatRequest) (*port.ChatResponse, error) {
	now := time.Now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, m := range f.models {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("llm.FallbackModel: skipping %s (circuit open until %s)", f.names[i], resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := m.Complete(ctx, req)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Printf("llm.FallbackModel: %s failed: %v", f.names[i], err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		retryAfter := time.Until(earliestReset)
		if retryAfter < time.Second {
			retryAfter = time.Second
		}
		return nil, NewRateLimitError("all", fmt.Errorf("all models rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("all models failed: %w", lastErr)
}
