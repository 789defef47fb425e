package service

import (
	"errors"
	"fmt"

	"stylewriter/internal/domain"
	"stylewriter/internal/llm"
)

// modelError classifies a language model failure so handlers can map it.
// The original error stays in the chain for errors.As.
func modelError(op string, err error) error {
	var rl *llm.RateLimitError
	if errors.As(err, &rl) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrRateLimited, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrModelUnavailable, err)
}
