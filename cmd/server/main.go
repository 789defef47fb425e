package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylewriter/internal/auth"
	"stylewriter/internal/config"
	"stylewriter/internal/extract"
	"stylewriter/internal/guidelines"
	"stylewriter/internal/handler"
	"stylewriter/internal/llm/providers"
	"stylewriter/internal/middleware"
	"stylewriter/internal/port"
	"stylewriter/internal/report"
	"stylewriter/internal/repository/postgres"
	"stylewriter/internal/router"
	"stylewriter/internal/service"
	s3storage "stylewriter/internal/storage/s3"
)

// @title Stylewriter API
// @version 1.0
// @description Style extraction, rewriting and document export service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	styleRepo := postgres.NewStyleRepo(db)
	rewriteRepo := postgres.NewRewriteRepo(db)

	// Language model chain
	model, err := providers.NewChatModel(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize language model: %w", err)
	}

	library, err := guidelines.Load(cfg.Library.Path)
	if err != nil {
		return fmt.Errorf("failed to load guideline library: %w", err)
	}

	exporter := report.NewExporter(report.LoadAssets(cfg.Report.AssetPaths()), report.WithBranding(cfg.Report.Branding()))

	// Artifact storage is optional; rewrites are still rendered without it.
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		s3Client, err := s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		storage = s3Client
		log.Printf("artifact storage: s3://%s/%s", s3Client.Bucket(), cfg.S3.Prefix)
	}

	maxFileSize := cfg.Upload.MaxFileSizeMB << 20

	// Initialize services
	exportSvc := service.NewExportService(exporter)
	styleSvc := service.NewStyleService(styleRepo, model, library, cfg.Rewrite.StyleTemperature)
	rewriteSvc := service.NewRewriteService(styleRepo, rewriteRepo, model, library, exportSvc, storage, service.RewriteOptions{
		Temperature:   cfg.Rewrite.Temperature,
		MaxTokens:     cfg.Rewrite.MaxTokens,
		Bucket:        cfg.S3.Bucket,
		PresignExpiry: cfg.S3.PresignExpiry,
	})

	var tokens middleware.TokenValidator
	if cfg.Auth.Enabled {
		tokens = auth.NewTokenManager(cfg.JWT)
	} else {
		log.Printf("WARNING: auth disabled; the API is open")
	}

	// Setup router
	r := router.Setup(tokens, cfg.CORS.AllowedOrigins, router.Handlers{
		Health:    handler.NewHealthHandler(db),
		Guideline: handler.NewGuidelineHandler(library),
		Extract:   handler.NewExtractHandler(extract.New(maxFileSize), cfg.Upload.MaxFiles, maxFileSize),
		Style:     handler.NewStyleHandler(styleSvc),
		Rewrite:   handler.NewRewriteHandler(rewriteSvc),
		Export:    handler.NewExportHandler(exportSvc),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("server stopped")
	return nil
}
