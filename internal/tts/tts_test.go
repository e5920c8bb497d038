package tts

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"

	"github.com/Sukanya41455/AccentChanger/internal/config"
)

func TestNewPollyClient_MissingCredentials(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:    "us-west-2",
		PollyVoiceID: "Aditi",
	}

	_, err := NewPollyClient(context.Background(), cfg)
	if err == nil {
		t.Fatal("Expected error when credentials are missing")
	}
	if !errors.Is(err, ErrAuth) {
		t.Errorf("Expected ErrAuth for missing credentials, got %v", err)
	}
}

func TestNewPollyClient_VoiceID(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:          "us-west-2",
		AWSAccessKeyID:     "test-access-key",
		AWSSecretAccessKey: "test-secret-key",
		PollyVoiceID:       "Aditi",
	}

	client, err := NewPollyClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewPollyClient() failed: %v", err)
	}

	if client.VoiceID() != "Aditi" {
		t.Errorf("Expected voice ID 'Aditi', got '%s'", client.VoiceID())
	}
}

func TestClassifyError_Nil(t *testing.T) {
	if err := ClassifyError(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestClassifyError_AuthCodes(t *testing.T) {
	for _, code := range []string{"UnrecognizedClientException", "InvalidSignatureException", "ExpiredTokenException"} {
		apiErr := &smithy.GenericAPIError{Code: code, Message: "denied"}
		if got := ClassifyError(apiErr); !errors.Is(got, ErrAuth) {
			t.Errorf("Expected ErrAuth for code %s, got %v", code, got)
		}
	}
}

func TestClassifyError_ServiceCodes(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ServiceFailureException", Message: "internal failure"}
	if got := ClassifyError(apiErr); !errors.Is(got, ErrServiceUnavailable) {
		t.Errorf("Expected ErrServiceUnavailable, got %v", got)
	}
}

func TestClassifyError_ConnectionError(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	if got := ClassifyError(err); !errors.Is(got, ErrServiceUnavailable) {
		t.Errorf("Expected ErrServiceUnavailable, got %v", got)
	}
}

func TestClassifyError_UnknownUnchanged(t *testing.T) {
	err := errors.New("truncated audio stream")
	got := ClassifyError(err)
	if !errors.Is(got, err) {
		t.Errorf("Expected unknown error unchanged, got %v", got)
	}
	if errors.Is(got, ErrAuth) || errors.Is(got, ErrServiceUnavailable) {
		t.Errorf("Unknown error must not match a taxonomy sentinel, got %v", got)
	}
}
