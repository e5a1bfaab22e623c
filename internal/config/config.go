package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	Storage   StorageConfig
	Limiter   RateLimiterConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Upload    UploadConfig
	Gemini    GeminiConfig
	Interview InterviewConfig
}

// snapshot persistence configuration
type StorageConfig struct {
	Backend     string `envconfig:"STORAGE_BACKEND" default:"file"`
	FilePath    string `envconfig:"STORAGE_FILE_PATH" default:"interview_state.json"`
	RedisAddr   string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass   string `envconfig:"REDIS_PASSWORD"`
	RedisDB     int    `envconfig:"REDIS_DB" default:"0"`
	PostgresDSN string `envconfig:"DATABASE_URL"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:4173,http://localhost:5173"`
}

// JWT configuration for the interviewer dashboard
type JWTConfig struct {
	Secret              string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL            time.Duration `envconfig:"JWT_TOKEN_TTL" default:"12h"`
	InterviewerPassword string        `envconfig:"INTERVIEWER_PASSWORD" required:"true"`
}

// resume upload configuration
type UploadConfig struct {
	Dir       string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxSizeMB int64  `envconfig:"UPLOAD_MAX_SIZE_MB" default:"10"`
}

// Gemini AI configuration. An empty API key disables the AI path and the
// interview falls back to the static question bank.
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

// interview behavior configuration
type InterviewConfig struct {
	// QuestionSource is "ai", "static", or "auto" (ai when a key is set).
	QuestionSource string `envconfig:"QUESTION_SOURCE" default:"auto"`
	QuestionCount  int    `envconfig:"QUESTION_COUNT" default:"6"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}

	switch c.Storage.Backend {
	case "file":
		if c.Storage.FilePath == "" {
			return fmt.Errorf("STORAGE_FILE_PATH is required for the file backend")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be one of: file, redis, postgres)", c.Storage.Backend)
	}

	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.JWT.InterviewerPassword == "" {
		return fmt.Errorf("INTERVIEWER_PASSWORD must not be empty")
	}
	if c.Upload.MaxSizeMB < 1 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB must be at least 1")
	}

	switch c.Interview.QuestionSource {
	case "ai", "static", "auto":
	default:
		return fmt.Errorf("invalid question source: %s (must be one of: ai, static, auto)", c.Interview.QuestionSource)
	}
	if c.Interview.QuestionCount < 1 || c.Interview.QuestionCount > 20 {
		return fmt.Errorf("QUESTION_COUNT must be between 1 and 20")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UseAIQuestions reports whether the Gemini path should drive the interview.
func (c *Config) UseAIQuestions() bool {
	switch c.Interview.QuestionSource {
	case "ai":
		return true
	case "static":
		return false
	default:
		return c.Gemini.APIKey != ""
	}
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Storage.Backend=%s, Limiter.RPS=%.2f, "+
		"Limiter.Burst=%d, Limiter.Enabled=%t, CORS.Origins=%d, JWT.TokenTTL=%s, "+
		"Gemini.Model=%s, QuestionSource=%s}",
		c.Env, c.Port, c.Storage.Backend, c.Limiter.RPS,
		c.Limiter.Burst, c.Limiter.Enabled, len(c.CORS.TrustedOrigins), c.JWT.TokenTTL,
		c.Gemini.Model, c.Interview.QuestionSource)
}
