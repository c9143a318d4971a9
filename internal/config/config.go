package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port int    `envconfig:"APP_PORT" default:"8080"`

	// directories for saved transcripts
	SessionsDir      string `envconfig:"SESSIONS_DIR" default:"interview_sessions"`
	ConversationsDir string `envconfig:"CONVERSATIONS_DIR" default:"saved_interviews"`

	OpenAI    OpenAIConfig
	Questions QuestionsConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
}

// OpenAI chat-completions configuration
type OpenAIConfig struct {
	APIKey      string        `envconfig:"OPENAI_API_KEY" required:"true"`
	Model       string        `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	Timeout     time.Duration `envconfig:"OPENAI_TIMEOUT" default:"120s"`
	MaxTokens   int           `envconfig:"OPENAI_MAX_TOKENS" default:"500"`
	Temperature float32       `envconfig:"OPENAI_TEMPERATURE" default:"0.7"`
}

// question source configuration; the remote source calls an external
// question API instead of the built-in bank
type QuestionsConfig struct {
	Source    string        `envconfig:"QUESTION_SOURCE" default:"static"`
	BankFile  string        `envconfig:"QUESTION_BANK_FILE"`
	RemoteURL string        `envconfig:"QUESTION_API_URL"`
	CacheTTL  time.Duration `envconfig:"QUESTION_CACHE_TTL" default:"1h"`
}

// optional Postgres archive; sessions are only file-backed when unset
type DBConfig struct {
	DSN string `envconfig:"DATABASE_URL"`
}

// optional Redis cache for remote question lookups
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
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
	switch c.Questions.Source {
	case "static":
	case "remote":
		if c.Questions.RemoteURL == "" {
			return fmt.Errorf("QUESTION_API_URL is required when QUESTION_SOURCE=remote")
		}
	default:
		return fmt.Errorf("invalid question source: %s (must be static or remote)", c.Questions.Source)
	}
	if c.OpenAI.MaxTokens < 1 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be at least 1")
	}
	if c.SessionsDir == "" || c.ConversationsDir == "" {
		return fmt.Errorf("sessions and conversations directories must not be empty")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
