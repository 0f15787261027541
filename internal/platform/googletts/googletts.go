// Package googletts implements speech synthesis with Google Cloud
// Text-to-Speech, using a Taiwanese Mandarin voice.
package googletts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// Voice settings used for every request.
const (
	LanguageCode = "cmn-TW"
	VoiceName    = "cmn-TW-Wavenet-A"
	speakingRate = 0.95
)

// Synthesizer implements generation.SpeechSynthesizer.
type Synthesizer struct {
	endpoint string
	logger   *slog.Logger
}

var _ generation.SpeechSynthesizer = (*Synthesizer)(nil)

// New creates a synthesizer. An empty endpoint uses the public API.
func New(logger *slog.Logger, endpoint string) *Synthesizer {
	return &Synthesizer{endpoint: endpoint, logger: logger}
}

// Synthesize returns the MP3 audio content, already base64-encoded by the API.
func (s *Synthesizer) Synthesize(ctx context.Context, apiKey, script string) (string, error) {
	if apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if s.endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.endpoint))
	}
	svc, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: create text-to-speech client: %v", generation.ErrInvalidConfig, err)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "calling Google text-to-speech", "voice", VoiceName, "chars", len([]rune(script)))
	}

	resp, err := svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: script},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: LanguageCode,
			Name:         VoiceName,
			SsmlGender:   "FEMALE",
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  speakingRate,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", providerError(err)
	}
	if resp.AudioContent == "" {
		return "", &domain.ProviderCallError{Provider: domain.ProviderGoogle, Message: "no audio content", Err: generation.ErrEmptyResponse}
	}
	return resp.AudioContent, nil
}

func providerError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	pe := &domain.ProviderCallError{Provider: domain.ProviderGoogle, Message: err.Error(), Err: err}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		pe.StatusCode = gerr.Code
		pe.Message = gerr.Message
	}
	return pe
}
