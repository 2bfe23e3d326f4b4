package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	GenAI    GenAIConfig
	Pipeline PipelineConfig
	CORS     CORSConfig
	Email    EmailConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenAIConfig holds settings for the generative-language provider.
type GenAIConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// PipelineConfig holds processing pipeline driver settings.
type PipelineConfig struct {
	TickIntervalMs    int   `mapstructure:"tick_interval_ms"`
	Concurrency       int   `mapstructure:"concurrency"`
	StageTimeoutSecs  int   `mapstructure:"stage_timeout_secs"`
	StageDurationsMs  []int `mapstructure:"stage_durations_ms"`
	RetainFinishedMin int   `mapstructure:"retain_finished_min"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// Load reads configuration from environment variables with the LEGALEASE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEGALEASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "legalease")
	v.SetDefault("db.password", "legalease_secret")
	v.SetDefault("db.name", "legalease_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "legalease")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "legalease-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// GenAI defaults
	v.SetDefault("genai.provider", "gemini")
	v.SetDefault("genai.api_key", "")
	v.SetDefault("genai.default_model", "gemini-1.5-flash")
	v.SetDefault("genai.timeout_secs", 60)

	// Pipeline defaults. Stage durations mirror the five-stage plan:
	// upload, extraction, security, simplification, final analysis.
	v.SetDefault("pipeline.tick_interval_ms", 100)
	v.SetDefault("pipeline.concurrency", 5)
	v.SetDefault("pipeline.stage_timeout_secs", 120)
	v.SetDefault("pipeline.stage_durations_ms", "3000,8000,5000,10000,4000")
	v.SetDefault("pipeline.retain_finished_min", 60)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@legalease.app")
	v.SetDefault("email.from_name", "LegalEase")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "LEGALEASE_SERVER_PORT",
		"server.read_timeout":          "LEGALEASE_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "LEGALEASE_SERVER_WRITE_TIMEOUT",
		"server.environment":           "LEGALEASE_SERVER_ENVIRONMENT",
		"db.host":                      "LEGALEASE_DB_HOST",
		"db.port":                      "LEGALEASE_DB_PORT",
		"db.user":                      "LEGALEASE_DB_USER",
		"db.password":                  "LEGALEASE_DB_PASSWORD",
		"db.name":                      "LEGALEASE_DB_NAME",
		"db.sslmode":                   "LEGALEASE_DB_SSLMODE",
		"db.max_open":                  "LEGALEASE_DB_MAX_OPEN",
		"db.max_idle":                  "LEGALEASE_DB_MAX_IDLE",
		"jwt.secret":                   "LEGALEASE_JWT_SECRET",
		"jwt.access_expiry":            "LEGALEASE_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":           "LEGALEASE_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                   "LEGALEASE_JWT_ISSUER",
		"s3.region":                    "LEGALEASE_S3_REGION",
		"s3.bucket":                    "LEGALEASE_S3_BUCKET",
		"s3.endpoint":                  "LEGALEASE_S3_ENDPOINT",
		"s3.access_key":                "LEGALEASE_S3_ACCESS_KEY",
		"s3.secret_key":                "LEGALEASE_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "LEGALEASE_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "LEGALEASE_S3_PRESIGN_EXPIRY",
		"log.level":                    "LEGALEASE_LOG_LEVEL",
		"log.format":                   "LEGALEASE_LOG_FORMAT",
		"cors.allowed_origins":         "LEGALEASE_CORS_ALLOWED_ORIGINS",
		"genai.provider":               "LEGALEASE_GENAI_PROVIDER",
		"genai.api_key":                "LEGALEASE_GENAI_API_KEY",
		"genai.default_model":          "LEGALEASE_GENAI_DEFAULT_MODEL",
		"genai.timeout_secs":           "LEGALEASE_GENAI_TIMEOUT_SECS",
		"pipeline.tick_interval_ms":    "LEGALEASE_PIPELINE_TICK_INTERVAL_MS",
		"pipeline.concurrency":         "LEGALEASE_PIPELINE_CONCURRENCY",
		"pipeline.stage_timeout_secs":  "LEGALEASE_PIPELINE_STAGE_TIMEOUT_SECS",
		"pipeline.stage_durations_ms":  "LEGALEASE_PIPELINE_STAGE_DURATIONS_MS",
		"pipeline.retain_finished_min": "LEGALEASE_PIPELINE_RETAIN_FINISHED_MIN",
		"email.provider":               "LEGALEASE_EMAIL_PROVIDER",
		"email.region":                 "LEGALEASE_EMAIL_REGION",
		"email.from_address":           "LEGALEASE_EMAIL_FROM_ADDRESS",
		"email.from_name":              "LEGALEASE_EMAIL_FROM_NAME",
		"email.frontend_url":           "LEGALEASE_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEGALEASE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEGALEASE_SERVER_PORT") == "" {
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
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.GenAI = GenAIConfig{
		Provider:     v.GetString("genai.provider"),
		APIKey:       v.GetString("genai.api_key"),
		DefaultModel: v.GetString("genai.default_model"),
		TimeoutSecs:  v.GetInt("genai.timeout_secs"),
	}
	cfg.Pipeline = PipelineConfig{
		TickIntervalMs:    v.GetInt("pipeline.tick_interval_ms"),
		Concurrency:       v.GetInt("pipeline.concurrency"),
		StageTimeoutSecs:  v.GetInt("pipeline.stage_timeout_secs"),
		StageDurationsMs:  parseIntList(v.GetString("pipeline.stage_durations_ms")),
		RetainFinishedMin: v.GetInt("pipeline.retain_finished_min"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}

// splitList parses a comma-separated string into a slice, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseIntList parses a comma-separated list of integers, skipping invalid entries.
func parseIntList(s string) []int {
	var out []int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(item, "%d", &n); err == nil {
			out = append(out, n)
		}
	}
	return out
}
