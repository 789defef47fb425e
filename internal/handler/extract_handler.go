package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"stylewriter/internal/domain"
	"stylewriter/internal/port"
)

// ExtractTextResponse is the text pulled from a batch of uploads.
type ExtractTextResponse struct {
	Text       string   `json:"text"`
	Files      []string `json:"files"`
	Characters int      `json:"characters"`
}

// ExtractHandler turns uploaded documents into plain text.
type ExtractHandler struct {
	extractor   port.TextExtractor
	maxFiles    int
	maxFileSize int64
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractor port.TextExtractor, maxFiles int, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{extractor: extractor, maxFiles: maxFiles, maxFileSize: maxFileSize}
}

// ExtractText handles POST /api/v1/extract-text
// @Summary Extract text from documents
// @Description Extracts and concatenates text from PDF, DOCX, PPTX, TXT or Markdown uploads in upload order
// @Tags extract
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Documents to extract (repeatable)"
// @Success 200 {object} Response{data=ExtractTextResponse}
// @Failure 400 {object} ErrorResponseBody "Missing files or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /extract-text [post]
func (h *ExtractHandler) ExtractText(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart form is required")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "at least one file is required in 'files' field")
		return
	}
	if h.maxFiles > 0 && len(fileHeaders) > h.maxFiles {
		HandleError(c, domain.ErrTooManyFiles)
		return
	}

	files := make([]port.SourceFile, 0, len(fileHeaders))
	names := make([]string, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if h.maxFileSize > 0 && fh.Size > h.maxFileSize {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		data, err := readUpload(fh)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "FILE_READ_ERROR", "failed to read uploaded file")
			return
		}
		files = append(files, port.SourceFile{Name: fh.Filename, Data: data})
		names = append(names, fh.Filename)
	}

	text, err := h.extractor.ExtractAll(files)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ExtractTextResponse{Text: text, Files: names, Characters: len([]rune(text))})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
