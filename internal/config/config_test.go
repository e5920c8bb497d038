package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("DEEPGRAM_API_KEY", "test-deepgram-key")
	defer os.Unsetenv("DEEPGRAM_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DeepgramAPIKey != "test-deepgram-key" {
		t.Errorf("Expected DeepgramAPIKey 'test-deepgram-key', got '%s'", cfg.DeepgramAPIKey)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("DEEPGRAM_API_KEY")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when DEEPGRAM_API_KEY is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("DEEPGRAM_API_KEY", "test-deepgram-key")
	defer os.Unsetenv("DEEPGRAM_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default Port '8080', got '%s'", cfg.Port)
	}

	if cfg.DeepgramModel != "nova-2" {
		t.Errorf("Expected default DeepgramModel 'nova-2', got '%s'", cfg.DeepgramModel)
	}

	if cfg.DeepgramLanguage != "en-US" {
		t.Errorf("Expected default DeepgramLanguage 'en-US', got '%s'", cfg.DeepgramLanguage)
	}

	if cfg.AWSRegion != "us-west-2" {
		t.Errorf("Expected default AWSRegion 'us-west-2', got '%s'", cfg.AWSRegion)
	}

	if cfg.PollyVoiceID != "Aditi" {
		t.Errorf("Expected default PollyVoiceID 'Aditi', got '%s'", cfg.PollyVoiceID)
	}

	if cfg.ListenTimeout != 5*time.Second {
		t.Errorf("Expected default ListenTimeout 5s, got %v", cfg.ListenTimeout)
	}

	if cfg.PhraseTimeLimit != 5*time.Second {
		t.Errorf("Expected default PhraseTimeLimit 5s, got %v", cfg.PhraseTimeLimit)
	}

	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("Expected default SessionTTL 30m, got %v", cfg.SessionTTL)
	}
}

func TestLoad_MissingCredentialsIsNotFatal(t *testing.T) {
	// The AWS credential triple is only checked when the synthesis client is
	// constructed; config loading must succeed without it.
	os.Setenv("DEEPGRAM_API_KEY", "test-deepgram-key")
	os.Unsetenv("AWS_ACCESS_KEY_ID")
	os.Unsetenv("AWS_SECRET_ACCESS_KEY")
	defer os.Unsetenv("DEEPGRAM_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AWSAccessKeyID != "" {
		t.Errorf("Expected empty AWSAccessKeyID, got '%s'", cfg.AWSAccessKeyID)
	}
}

func TestRecognitionDeadline(t *testing.T) {
	cfg := &Config{
		ListenTimeout:   5 * time.Second,
		PhraseTimeLimit: 5 * time.Second,
	}

	if got := cfg.RecognitionDeadline(); got != 10*time.Second {
		t.Errorf("Expected RecognitionDeadline 10s, got %v", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("DEEPGRAM_API_KEY", "test-deepgram-key")
	os.Setenv("POLLY_VOICE_ID", "Raveena")
	defer os.Unsetenv("DEEPGRAM_API_KEY")
	defer os.Unsetenv("POLLY_VOICE_ID")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() failed: %v", err)
	}

	if cfg.PollyVoiceID != "Raveena" {
		t.Errorf("Expected PollyVoiceID 'Raveena', got '%s'", cfg.PollyVoiceID)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_KEY", "test-value")
	defer os.Unsetenv("TEST_KEY")

	value := GetEnv("TEST_KEY", "default")
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	value = GetEnv("NON_EXISTENT_KEY", "default")
	if value != "default" {
		t.Errorf("Expected 'default', got '%s'", value)
	}
}

func TestLoad_ObservabilityDefaults(t *testing.T) {
	os.Setenv("DEEPGRAM_API_KEY", "test-deepgram-key")
	os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("DEEPGRAM_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.LogPretty {
		t.Error("Expected default LogPretty false, got true")
	}

	if !cfg.MetricsEnabled {
		t.Error("Expected default MetricsEnabled true, got false")
	}
}
