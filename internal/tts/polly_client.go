package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"

	"github.com/Sukanya41455/AccentChanger/internal/config"
	"github.com/Sukanya41455/AccentChanger/internal/observability"
)

// PollyClient implements Synthesizer using AWS Polly. Output is always mp3 so
// the browser can play it back directly.
type PollyClient struct {
	client  *polly.Client
	voiceID string
}

// NewPollyClient creates a Polly synthesizer from the configured region and
// credential triple. A missing credential is a client-initialization failure,
// not a config-load failure.
func NewPollyClient(ctx context.Context, cfg *config.Config) (*PollyClient, error) {
	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		return nil, fmt.Errorf("%w: AWS credentials are not configured", ErrAuth)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			cfg.AWSSessionToken,
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Polly client: %w", err)
	}

	return &PollyClient{
		client:  polly.NewFromConfig(awsCfg),
		voiceID: cfg.PollyVoiceID,
	}, nil
}

// Synthesize renders text as mp3 audio in the configured accent voice
func (p *PollyClient) Synthesize(ctx context.Context, text string) (*Speech, error) {
	logger := observability.GetLogger()

	out, err := p.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: pollytypes.OutputFormatMp3,
		VoiceId:      pollytypes.VoiceId(p.voiceID),
	})
	if err != nil {
		logger.Error().Err(err).Str("voice_id", p.voiceID).Msg("Polly synthesis request failed")
		return nil, ClassifyError(err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	logger.Debug().
		Str("voice_id", p.voiceID).
		Int("bytes", len(audio)).
		Msg("Polly synthesis succeeded")

	return &Speech{
		Audio:       audio,
		ContentType: "audio/mpeg",
	}, nil
}

// VoiceID reports the configured voice identifier
func (p *PollyClient) VoiceID() string {
	return p.voiceID
}
