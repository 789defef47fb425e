package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stylewriter/internal/domain"
	"stylewriter/internal/middleware"
	"stylewriter/internal/service"
)

// RewriteHandler handles rewrite endpoints.
type RewriteHandler struct {
	rewriteService service.RewriteService
}

// NewRewriteHandler creates a new RewriteHandler.
func NewRewriteHandler(rewriteService service.RewriteService) *RewriteHandler {
	return &RewriteHandler{rewriteService: rewriteService}
}

// Create handles POST /api/v1/rewrites
// @Summary Rewrite content in a saved style
// @Description Rewrites the content, stores the result and renders DOCX and PDF artifacts.
// @Description Omitting guidelines applies the default selection; an empty list applies none.
// @Tags rewrites
// @Accept json
// @Produce json
// @Param request body RewriteRequest true "Rewrite request"
// @Success 201 {object} Response{data=service.RewriteResult}
// @Failure 400 {object} ErrorResponseBody "Empty content or unknown guideline"
// @Failure 404 {object} ErrorResponseBody "Style not found"
// @Failure 429 {object} ErrorResponseBody "Providers rate limited"
// @Failure 502 {object} ErrorResponseBody "Model unavailable"
// @Security BearerAuth
// @Router /rewrites [post]
func (h *RewriteHandler) Create(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content and style_name are required")
		return
	}

	result, err := h.rewriteService.Rewrite(c.Request.Context(), &service.RewriteInput{
		Content:               req.Content,
		StyleName:             req.StyleName,
		Guidelines:            req.Guidelines,
		MaxOutputLength:       req.MaxOutputLength,
		AdditionalInstruction: req.AdditionalInstruction,
		CreatedBy:             middleware.GetSubject(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/rewrites
// @Summary List rewrites
// @Tags rewrites
// @Produce json
// @Param style_id query string false "Filter by style ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Rewrite,meta=PagMeta}
// @Security BearerAuth
// @Router /rewrites [get]
func (h *RewriteHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var styleID *uuid.UUID
	if raw := c.Query("style_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid style_id")
			return
		}
		styleID = &parsed
	}

	rewrites, total, err := h.rewriteService.List(c.Request.Context(), styleID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rewrites, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/rewrites/:id
// @Summary Get a rewrite
// @Tags rewrites
// @Produce json
// @Param id path string true "Rewrite ID"
// @Success 200 {object} Response{data=domain.Rewrite}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /rewrites/{id} [get]
func (h *RewriteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid rewrite ID")
		return
	}

	rw, err := h.rewriteService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rw)
}

// Download handles GET /api/v1/rewrites/:id/download/:format
// @Summary Download a rewrite
// @Description Renders the stored rewrite output as docx, pdf, xlsx or csv
// @Tags rewrites
// @Produce application/octet-stream
// @Param id path string true "Rewrite ID"
// @Param format path string true "Export format" Enums(docx, pdf, xlsx, csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /rewrites/{id}/download/{format} [get]
func (h *RewriteHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid rewrite ID")
		return
	}
	format, err := domain.ParseExportFormat(c.Param("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	dl, err := h.rewriteService.Download(c.Request.Context(), id, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondFile(c, dl.FileName, dl.ContentType, dl.Data)
}
