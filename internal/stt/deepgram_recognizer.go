package stt

import (
	"context"
	"fmt"
	"io"
	"strings"

	listenv1rest "github.com/deepgram/deepgram-go-sdk/v3/pkg/api/listen/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/interfaces"
	listenClient "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/listen"

	"github.com/Sukanya41455/AccentChanger/internal/config"
	"github.com/Sukanya41455/AccentChanger/internal/observability"
)

// DeepgramRecognizer implements Recognizer against Deepgram's pre-recorded
// transcription API. Each Recognize call is one synchronous request; the
// caller bounds it with a context deadline.
type DeepgramRecognizer struct {
	config *config.Config
	client *listenv1rest.Client
}

// NewDeepgramRecognizer creates a recognizer from configuration
func NewDeepgramRecognizer(cfg *config.Config) (*DeepgramRecognizer, error) {
	if cfg.DeepgramAPIKey == "" {
		return nil, fmt.Errorf("deepgram API key is not configured")
	}

	rest := listenClient.NewREST(cfg.DeepgramAPIKey, &interfaces.ClientOptions{})

	return &DeepgramRecognizer{
		config: cfg,
		client: listenv1rest.New(rest),
	}, nil
}

// Recognize transcribes one audio clip and returns the recognized text.
// Failures are folded into the package taxonomy: an empty transcript is
// ErrNoSpeech, a blown deadline is ErrTimeout, transport failures are
// ErrServiceUnavailable.
func (d *DeepgramRecognizer) Recognize(ctx context.Context, clip io.Reader) (string, error) {
	logger := observability.GetLogger()

	options := &interfaces.PreRecordedTranscriptionOptions{
		Model:       d.config.DeepgramModel,
		Language:    d.config.DeepgramLanguage,
		Punctuate:   true,
		SmartFormat: true,
	}

	res, err := d.client.FromStream(ctx, clip, options)
	if err != nil {
		logger.Error().Err(err).Msg("Deepgram transcription request failed")
		return "", ClassifyError(err)
	}

	if res == nil || len(res.Results.Channels) == 0 || len(res.Results.Channels[0].Alternatives) == 0 {
		return "", ErrNoSpeech
	}

	transcript := strings.TrimSpace(res.Results.Channels[0].Alternatives[0].Transcript)
	if transcript == "" {
		return "", ErrNoSpeech
	}

	logger.Debug().
		Str("model", d.config.DeepgramModel).
		Int("length", len(transcript)).
		Msg("Deepgram transcription succeeded")

	return transcript, nil
}
