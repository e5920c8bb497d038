package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// Synthesis failure kinds
var (
	// ErrAuth means the synthesis service rejected the configured credentials
	ErrAuth = errors.New("synthesis authentication failed")

	// ErrServiceUnavailable means the synthesis service could not be reached
	ErrServiceUnavailable = errors.New("synthesis service unavailable")
)

// Speech is one synthesized audio artifact, ready for immediate playback
type Speech struct {
	Audio       []byte
	ContentType string
}

// Synthesizer converts text to speech using a fixed, configured voice. The
// voice is an opaque parameter chosen at construction time, never computed
// per call.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Speech, error)

	// VoiceID reports the configured voice identifier
	VoiceID() string
}

// ClassifyError folds a raw service error into the synthesis failure taxonomy
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrAuth) || errors.Is(err, ErrServiceUnavailable) {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnrecognizedClientException",
			"InvalidSignatureException",
			"AccessDeniedException",
			"ExpiredTokenException",
			"IncompleteSignatureException",
			"MissingAuthenticationTokenException":
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case "ServiceFailureException", "ThrottlingException", "ServiceUnavailableException":
			return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		return err
	}

	msg := err.Error()
	for _, needle := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
	} {
		if strings.Contains(msg, needle) {
			return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
	}

	return err
}
