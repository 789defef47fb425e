package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stylewriter/internal/domain"
	"stylewriter/internal/service"
)

// ExportHandler renders arbitrary text into downloadable documents.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles POST /api/v1/exports
// @Summary Export text as a document
// @Tags exports
// @Accept json
// @Produce application/octet-stream
// @Param request body ExportRequest true "Text to render"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Security BearerAuth
// @Router /exports [post]
func (h *ExportHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text and format are required")
		return
	}
	format, err := domain.ParseExportFormat(req.Format)
	if err != nil {
		HandleError(c, err)
		return
	}

	dl, err := h.exportService.Export(c.Request.Context(), &service.ExportInput{
		Text:   req.Text,
		Title:  req.Title,
		Format: format,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondFile(c, dl.FileName, dl.ContentType, dl.Data)
}

// Outline handles POST /api/v1/exports/outline
// @Summary Preview document structure
// @Description Classifies the text into blocks without rendering it
// @Tags exports
// @Accept json
// @Produce json
// @Param request body OutlineRequest true "Text to classify"
// @Success 200 {object} Response{data=[]report.OutlineEntry}
// @Security BearerAuth
// @Router /exports/outline [post]
func (h *ExportHandler) Outline(c *gin.Context) {
	var req OutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	RespondOK(c, h.exportService.Outline(req.Text))
}
