package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ExtractStyleRequest represents the style extraction request body.
type ExtractStyleRequest struct {
	Name                  string `json:"name" binding:"required" example:"Examination Report"`
	Text                  string `json:"text" binding:"required" example:"I. SCOPE OF EXAMINATION..."`
	AdditionalInstruction string `json:"additional_instruction" example:"Focus on sentence structure"`
}

// RewriteRequest represents the rewrite request body. A missing guidelines
// field selects the library defaults.
type RewriteRequest struct {
	Content               string   `json:"content" binding:"required" example:"The bank did ok on credit risk."`
	StyleName             string   `json:"style_name" binding:"required" example:"Examination Report"`
	Guidelines            []string `json:"guidelines" example:"NUMBERS,CAPITALIZATION"`
	MaxOutputLength       int      `json:"max_output_length" example:"1000"`
	AdditionalInstruction string   `json:"additional_instruction" example:"Use British spelling"`
}

// ExportRequest represents the ad-hoc export request body.
type ExportRequest struct {
	Text   string `json:"text" binding:"required" example:"I. FINDINGS\n\nOverall: ACCEPTABLE"`
	Title  string `json:"title" example:"Examination Report"`
	Format string `json:"format" binding:"required" example:"pdf" enums:"docx,pdf,xlsx,csv"`
}

// OutlineRequest represents the outline preview request body.
type OutlineRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"style deleted"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
