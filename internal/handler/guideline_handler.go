package handler

import (
	"github.com/gin-gonic/gin"

	"stylewriter/internal/guidelines"
)

// GuidelineView is one selectable guideline section.
type GuidelineView struct {
	Name    string `json:"name" example:"NUMBERS"`
	Summary string `json:"summary,omitempty"`
	Content string `json:"content"`
	Default bool   `json:"default"`
}

// GuidelineHandler serves the guideline reference library.
type GuidelineHandler struct {
	library *guidelines.Library
}

// NewGuidelineHandler creates a new GuidelineHandler.
func NewGuidelineHandler(library *guidelines.Library) *GuidelineHandler {
	return &GuidelineHandler{library: library}
}

// List handles GET /api/v1/guidelines
// @Summary List guideline sections
// @Description Returns the guideline library in order, flagging the default selection
// @Tags guidelines
// @Produce json
// @Success 200 {object} Response{data=[]GuidelineView}
// @Security BearerAuth
// @Router /guidelines [get]
func (h *GuidelineHandler) List(c *gin.Context) {
	views := make([]GuidelineView, 0, len(h.library.Sections))
	for _, s := range h.library.Sections {
		views = append(views, GuidelineView{
			Name:    s.Name,
			Summary: s.Summary,
			Content: s.Content,
			Default: h.library.IsDefault(s.Name),
		})
	}
	RespondOK(c, views)
}
