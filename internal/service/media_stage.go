package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/prompt"
	"github.com/phrazzld/nani-api/internal/redact"
	"golang.org/x/time/rate"
)

// Notes shown to users next to generated media.
const (
	NoteImageGenerated   = "圖片已生成"
	NoteImageFailed      = "圖片生成失敗"
	noteImageUnsupported = " 不支援圖片生成，僅顯示腳本"

	NoteAudioFailed      = "TTS 生成失敗，請確認 API Key 已啟用 TTS 服務"
	NoteAudioUnavailable = "TTS 服務不可用"
	noteAudioUnsupported = " 不支援語音合成，請改用 Google 或 OpenAI"
)

// MediaLookup resolves media adapters by provider.
type MediaLookup interface {
	Image(p domain.Provider) (generation.ImageGenerator, error)
	Speech(p domain.Provider) (generation.SpeechSynthesizer, error)
}

// MediaStage annotates parsed artifacts with images and audio. It never
// fails: every outcome, including unsupported providers, is recorded on
// the artifact itself.
type MediaStage struct {
	lookup  MediaLookup
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewMediaStage creates a media stage. imagesPerMinute paces panel image
// calls; zero leaves them unpaced.
func NewMediaStage(lookup MediaLookup, imagesPerMinute int, logger *slog.Logger) *MediaStage {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if imagesPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(imagesPerMinute)), 1)
	}
	return &MediaStage{lookup: lookup, limiter: limiter, logger: logger}
}

// ImageUnsupportedNote is the panel note for providers without image generation.
func ImageUnsupportedNote(p domain.Provider) string {
	return p.Name() + noteImageUnsupported
}

// AudioUnsupportedNote is the podcast note for providers without speech synthesis.
func AudioUnsupportedNote(p domain.Provider) string {
	return p.Name() + noteAudioUnsupported
}

// IllustrateComic generates one image per panel, in panel order, one call at a time.
func (m *MediaStage) IllustrateComic(ctx context.Context, cfg domain.ProviderConfig, comic *domain.ComicArtifact) {
	log := logger.FromContextOrDefault(ctx, m.logger)

	images, err := m.lookup.Image(cfg.Provider)
	if err != nil {
		note := ImageUnsupportedNote(cfg.Provider)
		for i := range comic.Panels {
			comic.Panels[i].Attach(domain.MediaAttachment{Kind: domain.MediaImage, Note: note})
		}
		return
	}

	generated := 0
	for i := range comic.Panels {
		panel := &comic.Panels[i]

		if err := m.limiter.Wait(ctx); err != nil {
			log.WarnContext(ctx, "image pacing interrupted", "panel", panel.Number, "error", err)
			panel.Attach(domain.MediaAttachment{Kind: domain.MediaImage, Note: NoteImageFailed})
			continue
		}

		encoded, err := images.GenerateImage(ctx, cfg.APIKey, prompt.ComicPanelImage(panel.Scene))
		if err != nil || encoded == "" {
			if err != nil {
				log.WarnContext(ctx, "panel image failed", "panel", panel.Number, "error", redact.Error(err))
			}
			panel.Attach(domain.MediaAttachment{Kind: domain.MediaImage, Note: NoteImageFailed})
			continue
		}

		panel.Attach(domain.MediaAttachment{
			Kind:         domain.MediaImage,
			EncodedBytes: encoded,
			Generated:    true,
			Note:         NoteImageGenerated,
		})
		generated++
	}

	log.DebugContext(ctx, "comic illustrated", "panels", len(comic.Panels), "generated", generated)
}

// NarratePodcast synthesizes the full script with one adapter call.
func (m *MediaStage) NarratePodcast(ctx context.Context, cfg domain.ProviderConfig, podcast *domain.PodcastArtifact) {
	log := logger.FromContextOrDefault(ctx, m.logger)

	speech, err := m.lookup.Speech(cfg.Provider)
	if err != nil {
		podcast.Attach(domain.MediaAttachment{Kind: domain.MediaAudio, Note: AudioUnsupportedNote(cfg.Provider)})
		return
	}

	encoded, err := speech.Synthesize(ctx, cfg.APIKey, podcast.FullScript)
	if err != nil {
		log.WarnContext(ctx, "speech synthesis failed", "error", redact.Error(err))
		note := NoteAudioUnavailable
		var pe *domain.ProviderCallError
		if errors.As(err, &pe) {
			note = NoteAudioFailed
		}
		podcast.Attach(domain.MediaAttachment{Kind: domain.MediaAudio, Note: note})
		return
	}
	if encoded == "" {
		podcast.Attach(domain.MediaAttachment{Kind: domain.MediaAudio, Note: NoteAudioFailed})
		return
	}

	podcast.Attach(domain.MediaAttachment{Kind: domain.MediaAudio, EncodedBytes: encoded, Generated: true})
}
