package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stylewriter/docs"
	"stylewriter/internal/domain"
	"stylewriter/internal/handler"
	"stylewriter/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health    *handler.HealthHandler
	Guideline *handler.GuidelineHandler
	Extract   *handler.ExtractHandler
	Style     *handler.StyleHandler
	Rewrite   *handler.RewriteHandler
	Export    *handler.ExportHandler
}

// Setup configures the Gin engine with all routes and middleware. A nil
// tokens validator leaves the API open.
func Setup(tokens middleware.TokenValidator, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	adminOnly := []gin.HandlerFunc{}
	if tokens != nil {
		v1.Use(middleware.AuthMiddleware(tokens))
		adminOnly = append(adminOnly, middleware.RequireRole(domain.RoleAdmin))
	}

	v1.GET("/guidelines", h.Guideline.List)
	v1.POST("/extract-text", h.Extract.ExtractText)

	// Style library
	styles := v1.Group("/styles")
	styles.POST("/extract", h.Style.Extract)
	styles.GET("", h.Style.List)
	styles.GET("/:id", h.Style.GetByID)
	styles.DELETE("/:id", append(adminOnly, h.Style.Delete)...)

	// Rewrites
	rewrites := v1.Group("/rewrites")
	rewrites.POST("", h.Rewrite.Create)
	rewrites.GET("", h.Rewrite.List)
	rewrites.GET("/:id", h.Rewrite.GetByID)
	rewrites.GET("/:id/download/:format", h.Rewrite.Download)

	// Ad-hoc exports
	exports := v1.Group("/exports")
	exports.POST("", h.Export.Export)
	exports.POST("/outline", h.Export.Outline)

	return r
}
