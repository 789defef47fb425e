package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/llm"
	"stylewriter/internal/port"
)

type stubModel struct {
	calls int
	out   *port.ChatResponse
	err   error
}

func (s *stubModel) Complete(_ context.Context, _ port.ChatRequest) (*port.ChatResponse, error) {
	s.calls++
	return s.out, s.err
}

var req = port.ChatRequest{Messages: []port.ChatMessage{{Role: port.RoleUser, Content: "x"}}}

func TestFallbackModel_PrimarySucceeds(t *testing.T) {
	primary := &stubModel{out: &port.ChatResponse{Text: "a", ModelUsed: "p"}}
	secondary := &stubModel{out: &port.ChatResponse{Text: "b"}}
	f := llm.NewFallbackModel([]port.ChatModel{primary, secondary}, []string{"p", "s"})

	out, err := f.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "a", out.Text)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackModel_FallsThroughOnError(t *testing.T) {
	primary := &stubModel{err: errors.New("down")}
	secondary := &stubModel{out: &port.ChatResponse{Text: "b"}}
	f := llm.NewFallbackModel([]port.ChatModel{primary, secondary}, []string{"p", "s"})

	out, err := f.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "b", out.Text)
}

func TestFallbackModel_RateLimitOpensCircuit(t *testing.T) {
	primary := &stubModel{err: llm.NewRateLimitError("p", errors.New("429"), 60)}
	secondary := &stubModel{out: &port.ChatResponse{Text: "b"}}
	f := llm.NewFallbackModel([]port.ChatModel{primary, secondary}, []string{"p", "s"})

	_, err := f.Complete(context.Background(), req)
	require.NoError(t, err)
	_, err = f.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 2, secondary.calls)
}

func TestFallbackModel_AllRateLimited(t *testing.T) {
	a := &stubModel{err: llm.NewRateLimitError("a", errors.New("429"), 30)}
	b := &stubModel{err: llm.NewRateLimitError("b", errors.New("429"), 90)}
	f := llm.NewFallbackModel([]port.ChatModel{a, b}, []string{"a", "b"})

	_, err := f.Complete(context.Background(), req)
	var rl *llm.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "all", rl.Provider)
	assert.InDelta(t, 30, rl.RetryAfter.Seconds(), 1)
}

func TestFallbackModel_AllFailed(t *testing.T) {
	a := &stubModel{err: errors.New("first")}
	b := &stubModel{err: errors.New("second")}
	f := llm.NewFallbackModel([]port.ChatModel{a, b}, []string{"a", "b"})

	_, err := f.Complete(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all models failed")
	assert.Contains(t, err.Error(), "second")
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 15, llm.ParseRetryAfterHeader("15"))
}
