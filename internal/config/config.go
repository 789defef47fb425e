package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"stylewriter/internal/report"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	Auth    AuthConfig
	S3      S3Config
	Log     LogConfig
	LLM     LLMConfig
	CORS    CORSConfig
	Upload  UploadConfig
	Report  ReportConfig
	Library LibraryConfig
	Rewrite RewriteConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig toggles bearer-token protection of the API.
type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// UploadConfig bounds source document uploads for text extraction.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxFiles      int   `mapstructure:"max_files"`
}

// ReportConfig holds export asset paths and branding overrides.
type ReportConfig struct {
	LogoPath       string `mapstructure:"logo_path"`
	FontPath       string `mapstructure:"font_path"`
	BoldFontPath   string `mapstructure:"bold_font_path"`
	Organization   string `mapstructure:"organization"`
	Sector         string `mapstructure:"sector"`
	HeaderSubtitle string `mapstructure:"header_subtitle"`
	ReportTitle    string `mapstructure:"report_title"`
	Location       string `mapstructure:"location"`
	DocumentType   string `mapstructure:"document_type"`
	Author         string `mapstructure:"author"`

	ConfidentialNotice string `mapstructure:"confidential_notice"`
	NoticeText         string `mapstructure:"notice_text"`
}

// AssetPaths returns the on-disk locations of the export assets.
func (r *ReportConfig) AssetPaths() report.AssetPaths {
	return report.AssetPaths{
		Logo:     r.LogoPath,
		Font:     r.FontPath,
		BoldFont: r.BoldFontPath,
	}
}

// Branding returns the configured overrides. Empty fields fall back to the
// built-in branding when a plan is built.
func (r *ReportConfig) Branding() report.Branding {
	return report.Branding{
		Organization:       r.Organization,
		Sector:             r.Sector,
		HeaderSubtitle:     r.HeaderSubtitle,
		ReportTitle:        r.ReportTitle,
		Location:           r.Location,
		DocumentType:       r.DocumentType,
		ConfidentialNotice: r.ConfidentialNotice,
		NoticeText:         r.NoticeText,
		Author:             r.Author,
	}
}

// LibraryConfig locates the guideline reference library.
type LibraryConfig struct {
	Path string `mapstructure:"path"`
}

// RewriteConfig holds sampling settings for style extraction and rewriting.
type RewriteConfig struct {
	Temperature      float64 `mapstructure:"temperature"`
	StyleTemperature float64 `mapstructure:"style_temperature"`
	MaxTokens        int     `mapstructure:"max_tokens"`
}

// LLMProviderConfig holds settings for a single language model provider.
type LLMProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// LLMConfig holds language model settings with multi-provider support.
type LLMConfig struct {
	// Legacy flat fields
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	Primary   LLMProviderConfig `mapstructure:"primary"`
	Secondary LLMProviderConfig `mapstructure:"secondary"`
	Tertiary  LLMProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (p *LLMConfig) PrimaryConfig() *LLMProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return &LLMProviderConfig{
		Provider:     p.Provider,
		APIKey:       p.APIKey,
		DefaultModel: p.DefaultModel,
		MaxRetries:   p.MaxRetries,
		TimeoutSecs:  p.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *LLMConfig) SecondaryConfig() *LLMProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (p *LLMConfig) TertiaryConfig() *LLMProviderConfig {
	if p.Tertiary.Provider != "" {
		return &p.Tertiary
	}
	return nil
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds token signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds artifact storage settings.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Prefix        string `mapstructure:"prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the STYLEWRITER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STYLEWRITER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "stylewriter")
	v.SetDefault("db.password", "stylewriter_secret")
	v.SetDefault("db.name", "stylewriter_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT / auth defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "stylewriter")
	v.SetDefault("auth.enabled", false)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "ap-southeast-1")
	v.SetDefault("s3.bucket", "stylewriter-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "exports")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8501,http://127.0.0.1:8501")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)
	v.SetDefault("upload.max_files", 10)

	// Report defaults
	v.SetDefault("report.logo_path", "assets/logo.png")
	v.SetDefault("report.font_path", "assets/DejaVuSans.ttf")
	v.SetDefault("report.bold_font_path", "assets/DejaVuSans-Bold.ttf")

	// Library defaults (empty = embedded library)
	v.SetDefault("library.path", "")

	// Rewrite defaults
	v.SetDefault("rewrite.temperature", 0.7)
	v.SetDefault("rewrite.style_temperature", 0.0)
	v.SetDefault("rewrite.max_tokens", 8192)

	// LLM defaults (legacy flat)
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.default_model", "gpt-4o")
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.timeout_secs", 120)

	// LLM primary/secondary/tertiary defaults
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("llm."+tier+".provider", "")
		v.SetDefault("llm."+tier+".api_key", "")
		v.SetDefault("llm."+tier+".default_model", "")
		v.SetDefault("llm."+tier+".max_retries", 2)
		v.SetDefault("llm."+tier+".timeout_secs", 120)
	}

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "STYLEWRITER_SERVER_PORT",
		"server.read_timeout":         "STYLEWRITER_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "STYLEWRITER_SERVER_WRITE_TIMEOUT",
		"server.environment":          "STYLEWRITER_SERVER_ENVIRONMENT",
		"db.host":                     "STYLEWRITER_DB_HOST",
		"db.port":                     "STYLEWRITER_DB_PORT",
		"db.user":                     "STYLEWRITER_DB_USER",
		"db.password":                 "STYLEWRITER_DB_PASSWORD",
		"db.name":                     "STYLEWRITER_DB_NAME",
		"db.sslmode":                  "STYLEWRITER_DB_SSLMODE",
		"db.max_open":                 "STYLEWRITER_DB_MAX_OPEN",
		"db.max_idle":                 "STYLEWRITER_DB_MAX_IDLE",
		"jwt.secret":                  "STYLEWRITER_JWT_SECRET",
		"jwt.access_expiry":           "STYLEWRITER_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                  "STYLEWRITER_JWT_ISSUER",
		"auth.enabled":                "STYLEWRITER_AUTH_ENABLED",
		"s3.enabled":                  "STYLEWRITER_S3_ENABLED",
		"s3.region":                   "STYLEWRITER_S3_REGION",
		"s3.bucket":                   "STYLEWRITER_S3_BUCKET",
		"s3.endpoint":                 "STYLEWRITER_S3_ENDPOINT",
		"s3.access_key":               "STYLEWRITER_S3_ACCESS_KEY",
		"s3.secret_key":               "STYLEWRITER_S3_SECRET_KEY",
		"s3.prefix":                   "STYLEWRITER_S3_PREFIX",
		"s3.presign_expiry":           "STYLEWRITER_S3_PRESIGN_EXPIRY",
		"log.level":                   "STYLEWRITER_LOG_LEVEL",
		"log.format":                  "STYLEWRITER_LOG_FORMAT",
		"cors.allowed_origins":        "STYLEWRITER_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":     "STYLEWRITER_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_files":            "STYLEWRITER_UPLOAD_MAX_FILES",
		"report.logo_path":            "STYLEWRITER_REPORT_LOGO_PATH",
		"report.font_path":            "STYLEWRITER_REPORT_FONT_PATH",
		"report.bold_font_path":       "STYLEWRITER_REPORT_BOLD_FONT_PATH",
		"report.organization":         "STYLEWRITER_REPORT_ORGANIZATION",
		"report.sector":               "STYLEWRITER_REPORT_SECTOR",
		"report.header_subtitle":      "STYLEWRITER_REPORT_HEADER_SUBTITLE",
		"report.report_title":         "STYLEWRITER_REPORT_REPORT_TITLE",
		"report.location":             "STYLEWRITER_REPORT_LOCATION",
		"report.document_type":        "STYLEWRITER_REPORT_DOCUMENT_TYPE",
		"report.author":               "STYLEWRITER_REPORT_AUTHOR",
		"report.confidential_notice":  "STYLEWRITER_REPORT_CONFIDENTIAL_NOTICE",
		"report.notice_text":          "STYLEWRITER_REPORT_NOTICE_TEXT",
		"library.path":                "STYLEWRITER_LIBRARY_PATH",
		"rewrite.temperature":         "STYLEWRITER_REWRITE_TEMPERATURE",
		"rewrite.style_temperature":   "STYLEWRITER_REWRITE_STYLE_TEMPERATURE",
		"rewrite.max_tokens":          "STYLEWRITER_REWRITE_MAX_TOKENS",
		"llm.provider":                "STYLEWRITER_LLM_PROVIDER",
		"llm.api_key":                 "STYLEWRITER_LLM_API_KEY",
		"llm.default_model":           "STYLEWRITER_LLM_DEFAULT_MODEL",
		"llm.max_retries":             "STYLEWRITER_LLM_MAX_RETRIES",
		"llm.timeout_secs":            "STYLEWRITER_LLM_TIMEOUT_SECS",
		"llm.primary.provider":        "STYLEWRITER_LLM_PRIMARY_PROVIDER",
		"llm.primary.api_key":         "STYLEWRITER_LLM_PRIMARY_API_KEY",
		"llm.primary.default_model":   "STYLEWRITER_LLM_PRIMARY_DEFAULT_MODEL",
		"llm.primary.max_retries":     "STYLEWRITER_LLM_PRIMARY_MAX_RETRIES",
		"llm.primary.timeout_secs":    "STYLEWRITER_LLM_PRIMARY_TIMEOUT_SECS",
		"llm.secondary.provider":      "STYLEWRITER_LLM_SECONDARY_PROVIDER",
		"llm.secondary.api_key":       "STYLEWRITER_LLM_SECONDARY_API_KEY",
		"llm.secondary.default_model": "STYLEWRITER_LLM_SECONDARY_DEFAULT_MODEL",
		"llm.secondary.max_retries":   "STYLEWRITER_LLM_SECONDARY_MAX_RETRIES",
		"llm.secondary.timeout_secs":  "STYLEWRITER_LLM_SECONDARY_TIMEOUT_SECS",
		"llm.tertiary.provider":       "STYLEWRITER_LLM_TERTIARY_PROVIDER",
		"llm.tertiary.api_key":        "STYLEWRITER_LLM_TERTIARY_API_KEY",
		"llm.tertiary.default_model":  "STYLEWRITER_LLM_TERTIARY_DEFAULT_MODEL",
		"llm.tertiary.max_retries":    "STYLEWRITER_LLM_TERTIARY_MAX_RETRIES",
		"llm.tertiary.timeout_secs":   "STYLEWRITER_LLM_TERTIARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if STYLEWRITER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("STYLEWRITER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Auth = AuthConfig{
		Enabled: v.GetBool("auth.enabled"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		Prefix:        v.GetString("s3.prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxFiles:      v.GetInt("upload.max_files"),
	}
	cfg.Report = ReportConfig{
		LogoPath:       v.GetString("report.logo_path"),
		FontPath:       v.GetString("report.font_path"),
		BoldFontPath:   v.GetString("report.bold_font_path"),
		Organization:   v.GetString("report.organization"),
		Sector:         v.GetString("report.sector"),
		HeaderSubtitle: v.GetString("report.header_subtitle"),
		ReportTitle:    v.GetString("report.report_title"),
		Location:       v.GetString("report.location"),
		DocumentType:   v.GetString("report.document_type"),
		Author:         v.GetString("report.author"),

		ConfidentialNotice: v.GetString("report.confidential_notice"),
		NoticeText:         v.GetString("report.notice_text"),
	}
	cfg.Library = LibraryConfig{
		Path: v.GetString("library.path"),
	}
	cfg.Rewrite = RewriteConfig{
		Temperature:      v.GetFloat64("rewrite.temperature"),
		StyleTemperature: v.GetFloat64("rewrite.style_temperature"),
		MaxTokens:        v.GetInt("rewrite.max_tokens"),
	}

	provider := func(prefix string) LLMProviderConfig {
		return LLMProviderConfig{
			Provider:     v.GetString(prefix + ".provider"),
			APIKey:       v.GetString(prefix + ".api_key"),
			DefaultModel: v.GetString(prefix + ".default_model"),
			MaxRetries:   v.GetInt(prefix + ".max_retries"),
			TimeoutSecs:  v.GetInt(prefix + ".timeout_secs"),
		}
	}
	cfg.LLM = LLMConfig{
		Provider:     v.GetString("llm.provider"),
		APIKey:       v.GetString("llm.api_key"),
		DefaultModel: v.GetString("llm.default_model"),
		MaxRetries:   v.GetInt("llm.max_retries"),
		TimeoutSecs:  v.GetInt("llm.timeout_secs"),
		Primary:      provider("llm.primary"),
		Secondary:    provider("llm.secondary"),
		Tertiary:     provider("llm.tertiary"),
	}

	if cfg.Auth.Enabled && cfg.JWT.Secret == "change-me-in-production" && cfg.Server.Environment == "production" {
		return nil, fmt.Errorf("config.Load: jwt.secret must be set when auth is enabled in production")
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
