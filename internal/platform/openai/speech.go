package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	sdk "github.com/openai/openai-go"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
)

// MaxSpeechChars is the longest input tts-1 accepts in one request.
const MaxSpeechChars = 4000

const speechVoice sdk.AudioSpeechNewParamsVoice = "nova"

// SpeechSynthesizer implements generation.SpeechSynthesizer with tts-1.
type SpeechSynthesizer struct {
	baseURL string
	logger  *slog.Logger
}

var _ generation.SpeechSynthesizer = (*SpeechSynthesizer)(nil)

func NewSpeechSynthesizer(logger *slog.Logger, baseURL string) *SpeechSynthesizer {
	return &SpeechSynthesizer{baseURL: baseURL, logger: logger}
}

// Synthesize renders script chunk by chunk, in order, and returns the
// concatenated MP3 bytes base64-encoded. Any failing chunk fails the call.
func (s *SpeechSynthesizer) Synthesize(ctx context.Context, apiKey, script string) (string, error) {
	if apiKey == "" {
		return "", domain.ErrMissingAPIKey
	}
	client := newClient(apiKey, s.baseURL)

	chunks := Chunk(script, MaxSpeechChars)
	if s.logger != nil {
		s.logger.DebugContext(ctx, "synthesizing speech", "chunks", len(chunks), "chars", utf8.RuneCountInString(script))
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		if err := s.synthesizeChunk(ctx, client, chunk, &audio); err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
	}
	return base64.StdEncoding.EncodeToString(audio.Bytes()), nil
}

func (s *SpeechSynthesizer) synthesizeChunk(ctx context.Context, client sdk.Client, text string, dst io.Writer) error {
	resp, err := client.Audio.Speech.New(ctx, sdk.AudioSpeechNewParams{
		Model:          sdk.SpeechModelTTS1,
		Voice:          speechVoice,
		Input:          text,
		ResponseFormat: sdk.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return providerError(domain.ProviderOpenAI, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return providerError(domain.ProviderOpenAI, err)
	}
	return nil
}

func isSentenceEnd(r rune) bool {
	return r == '。' || r == '！' || r == '？' || r == '\n'
}

// Chunk splits text into pieces of at most limit runes. Pieces break after
// sentence terminators and are packed greedily; a sentence longer than limit
// is cut at the limit. Concatenating the pieces yields text.
func Chunk(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, sentence := range sentences(text) {
		n := utf8.RuneCountInString(sentence)
		switch {
		case n > limit:
			flush()
			runes := []rune(sentence)
			for len(runes) > limit {
				chunks = append(chunks, string(runes[:limit]))
				runes = runes[limit:]
			}
			cur.WriteString(string(runes))
			curLen = len(runes)
		case curLen+n > limit:
			flush()
			cur.WriteString(sentence)
			curLen = n
		default:
			cur.WriteString(sentence)
			curLen += n
		}
	}
	flush()
	return chunks
}

// sentences splits text after each terminator, keeping the terminator.
func sentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if isSentenceEnd(r) {
			end := i + utf8.RuneLen(r)
			out = append(out, text[start:end])
			start = end
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
