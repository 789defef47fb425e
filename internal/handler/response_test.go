package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylewriter/internal/domain"
	"stylewriter/internal/handler"
	"stylewriter/internal/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("wrapped: %w", domain.ErrDuplicateStyleName), http.StatusConflict, "DUPLICATE_STYLE_NAME"},
		{domain.ErrStyleNameRequired, http.StatusBadRequest, "STYLE_NAME_REQUIRED"},
		{domain.ErrEmptyContent, http.StatusBadRequest, "EMPTY_CONTENT"},
		{fmt.Errorf("%w: EMOJI", domain.ErrUnknownGuideline), http.StatusBadRequest, "UNKNOWN_GUIDELINE"},
		{domain.ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrTooManyFiles, http.StatusBadRequest, "TOO_MANY_FILES"},
		{domain.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{domain.ErrModelUnavailable, http.StatusBadGateway, "MODEL_UNAVAILABLE"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_UnknownGuidelineNamesSection(t *testing.T) {
	_, _, msg := handler.MapDomainError(fmt.Errorf("%w: EMOJI", domain.ErrUnknownGuideline))
	assert.Contains(t, msg, "EMOJI")
}

func TestHandleError_RateLimitSetsRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	rl := llm.NewRateLimitError("all", errors.New("429"), 42)
	handler.HandleError(c, fmt.Errorf("op: %w: %w", domain.ErrRateLimited, rl))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "RATE_LIMITED", resp.Error.Code)
}
