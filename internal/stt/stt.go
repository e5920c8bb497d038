package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
)

// Recognition failure kinds. Each maps to a distinct user-visible status
// message at the session boundary.
var (
	// ErrNoSpeech means the service understood the clip but found no speech in it
	ErrNoSpeech = errors.New("no speech detected")

	// ErrTimeout means the capture wait ceiling elapsed before a result arrived
	ErrTimeout = errors.New("recognition timed out")

	// ErrServiceUnavailable means the recognition service could not be reached
	ErrServiceUnavailable = errors.New("recognition service unavailable")
)

// Recognizer converts one captured audio clip into text. One call covers one
// bounded listening window; there is no streaming session behind it.
type Recognizer interface {
	Recognize(ctx context.Context, clip io.Reader) (string, error)
}

// ClassifyError folds a raw transport or context error into the recognition
// failure taxonomy. Errors already in the taxonomy pass through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNoSpeech) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrServiceUnavailable) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return err
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	msg := err.Error()
	for _, needle := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"service unavailable",
		"bad gateway",
	} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
