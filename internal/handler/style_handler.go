package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stylewriter/internal/middleware"
	"stylewriter/internal/service"
)

// StyleHandler handles style library endpoints.
type StyleHandler struct {
	styleService service.StyleService
}

// NewStyleHandler creates a new StyleHandler.
func NewStyleHandler(styleService service.StyleService) *StyleHandler {
	return &StyleHandler{styleService: styleService}
}

// Extract handles POST /api/v1/styles/extract
// @Summary Extract and save a writing style
// @Description Asks the language model to describe the style of the sample text and saves it under a unique name
// @Tags styles
// @Accept json
// @Produce json
// @Param request body ExtractStyleRequest true "Style sample"
// @Success 201 {object} Response{data=domain.Style}
// @Failure 400 {object} ErrorResponseBody "Missing name or text"
// @Failure 409 {object} ErrorResponseBody "Duplicate style name"
// @Failure 429 {object} ErrorResponseBody "Providers rate limited"
// @Failure 502 {object} ErrorResponseBody "Model unavailable"
// @Security BearerAuth
// @Router /styles/extract [post]
func (h *StyleHandler) Extract(c *gin.Context) {
	var req ExtractStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and text are required")
		return
	}

	style, err := h.styleService.Extract(c.Request.Context(), &service.ExtractStyleInput{
		Name:                  req.Name,
		Text:                  req.Text,
		AdditionalInstruction: req.AdditionalInstruction,
		CreatedBy:             middleware.GetSubject(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, style)
}

// List handles GET /api/v1/styles
// @Summary List styles
// @Tags styles
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Style,meta=PagMeta}
// @Security BearerAuth
// @Router /styles [get]
func (h *StyleHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	styles, total, err := h.styleService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, styles, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/styles/:id
// @Summary Get a style
// @Tags styles
// @Produce json
// @Param id path string true "Style ID"
// @Success 200 {object} Response{data=domain.Style}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /styles/{id} [get]
func (h *StyleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid style ID")
		return
	}

	style, err := h.styleService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, style)
}

// Delete handles DELETE /api/v1/styles/:id
// @Summary Delete a style
// @Description Removes a style from the library; its rewrite history is kept
// @Tags styles
// @Produce json
// @Param id path string true "Style ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /styles/{id} [delete]
func (h *StyleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid style ID")
		return
	}

	if err := h.styleService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "style deleted"})
}
