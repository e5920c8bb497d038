package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the accent changer service
type Config struct {
	// Server configuration
	Port string `envconfig:"PORT" default:"8080"`

	// Deepgram STT API configuration
	DeepgramAPIKey   string `envconfig:"DEEPGRAM_API_KEY" required:"true"`
	DeepgramModel    string `envconfig:"DEEPGRAM_MODEL" default:"nova-2"`   // nova-2, enhanced, base
	DeepgramLanguage string `envconfig:"DEEPGRAM_LANGUAGE" default:"en-US"` // Language code (en-US, en-IN, etc.)

	// AWS Polly TTS configuration. The credential triple is deliberately not
	// validated here; a missing credential surfaces when the synthesis client
	// is constructed.
	AWSRegion          string `envconfig:"AWS_DEFAULT_REGION" default:"us-west-2"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
	AWSSessionToken    string `envconfig:"AWS_SESSION_TOKEN" default:""`
	PollyVoiceID       string `envconfig:"POLLY_VOICE_ID" default:"Aditi"` // Fixed accent voice

	// Capture configuration. A recognition attempt waits at most
	// ListenTimeout for speech to start plus PhraseTimeLimit for it to end.
	ListenTimeout   time.Duration `envconfig:"LISTEN_TIMEOUT" default:"5s"`
	PhraseTimeLimit time.Duration `envconfig:"PHRASE_TIME_LIMIT" default:"5s"`
	MaxClipBytes    int64         `envconfig:"MAX_CLIP_BYTES" default:"10485760"` // Upload ceiling per clip

	// Session configuration
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"30m"` // Idle sessions are swept after this

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`       // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"false"`     // Pretty print logs (for development)
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"` // Enable Prometheus metrics
}

// RecognitionDeadline is the total wait ceiling for one utterance capture.
func (c *Config) RecognitionDeadline() time.Duration {
	return c.ListenTimeout + c.PhraseTimeLimit
}

// Load reads configuration from environment variables
// It first attempts to load from .env file if it exists, then from environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file (useful for containerized deployments)
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DeepgramAPIKey == "" {
		return nil, fmt.Errorf("DEEPGRAM_API_KEY is required")
	}

	return &cfg, nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
