package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every environment-driven setting. All keys are optional;
// missing values degrade functionality instead of failing startup (no LLM key
// makes plan generation unavailable, no search key drops real-time context,
// no database URL selects the local storage tiers).
type Config struct {
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	HTTPTimeout   time.Duration

	SerpAPIKey     string
	SerpAPIBaseURL string

	DatabaseURL string
	DataDir     string
	Ephemeral   bool

	MaxRetries   int
	RetryBackoff time.Duration
}

// Merge overlays non-zero values from the override onto the base config.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.OpenAIAPIKey) != "" {
		result.OpenAIAPIKey = strings.TrimSpace(override.OpenAIAPIKey)
	}
	if strings.TrimSpace(override.OpenAIModel) != "" {
		result.OpenAIModel = strings.TrimSpace(override.OpenAIModel)
	}
	if strings.TrimSpace(override.OpenAIBaseURL) != "" {
		result.OpenAIBaseURL = strings.TrimSpace(override.OpenAIBaseURL)
	}
	if override.HTTPTimeout > 0 {
		result.HTTPTimeout = override.HTTPTimeout
	}
	if strings.TrimSpace(override.SerpAPIKey) != "" {
		result.SerpAPIKey = strings.TrimSpace(override.SerpAPIKey)
	}
	if strings.TrimSpace(override.SerpAPIBaseURL) != "" {
		result.SerpAPIBaseURL = strings.TrimSpace(override.SerpAPIBaseURL)
	}
	if strings.TrimSpace(override.DatabaseURL) != "" {
		result.DatabaseURL = strings.TrimSpace(override.DatabaseURL)
	}
	if strings.TrimSpace(override.DataDir) != "" {
		result.DataDir = strings.TrimSpace(override.DataDir)
	}
	if override.Ephemeral {
		result.Ephemeral = true
	}
	if override.MaxRetries > 0 {
		result.MaxRetries = override.MaxRetries
	}
	if override.RetryBackoff > 0 {
		result.RetryBackoff = override.RetryBackoff
	}
	return result
}

// Load reads configuration from the environment and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		OpenAIAPIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:    strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")),
		OpenAIBaseURL:  strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")),
		SerpAPIKey:     strings.TrimSpace(os.Getenv("SERPAPI_KEY")),
		SerpAPIBaseURL: strings.TrimSpace(os.Getenv("SERPAPI_ENDPOINT")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DataDir:        strings.TrimSpace(os.Getenv("STUDYWAY_DATA_DIR")),
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); v != "" {
		dur, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse OPENAI_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = dur
	}
	if v := strings.TrimSpace(os.Getenv("STUDYWAY_EPHEMERAL")); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STUDYWAY_EPHEMERAL: %w", err)
		}
		cfg.Ephemeral = parsed
	}
	// Serverless platforms have no durable local disk.
	if os.Getenv("VERCEL") == "1" || os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		cfg.Ephemeral = true
	}
	if v := strings.TrimSpace(os.Getenv("STUDYWAY_MAX_RETRIES")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STUDYWAY_MAX_RETRIES: %w", err)
		}
		cfg.MaxRetries = parsed
	}
	if v := strings.TrimSpace(os.Getenv("STUDYWAY_RETRY_BACKOFF")); v != "" {
		dur, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STUDYWAY_RETRY_BACKOFF: %w", err)
		}
		cfg.RetryBackoff = dur
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4o-mini"
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 90 * time.Second
	}
	if c.SerpAPIBaseURL == "" {
		c.SerpAPIBaseURL = "https://serpapi.com"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 500 * time.Millisecond
	}
}
