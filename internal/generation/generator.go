package generation

import (
	"context"
	"fmt"

	"github.com/phrazzld/nani-api/internal/domain"
)

// TextGenerator runs a single-turn completion against one vendor.
type TextGenerator interface {
	// Generate sends system (when non-empty) and prompt as one exchange and
	// returns the first response's text, or "" when the vendor produced none.
	// Vendor failures are returned as *domain.ProviderCallError.
	Generate(ctx context.Context, cfg domain.ProviderConfig, prompt, system string) (string, error)
}

// ImageGenerator renders one square image from a prompt.
type ImageGenerator interface {
	// GenerateImage returns the base64-encoded image, or "" with a nil error
	// when the vendor answered without usable image data.
	GenerateImage(ctx context.Context, apiKey, prompt string) (string, error)
}

// SpeechSynthesizer turns a script into base64-encoded MP3 audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, apiKey, script string) (string, error)
}

// Registry maps each provider to its adapters. It is a closed set built at
// startup; a capability missing for a provider is reported as
// domain.ErrUnsupportedProvider.
type Registry struct {
	text   map[domain.Provider]TextGenerator
	image  map[domain.Provider]ImageGenerator
	speech map[domain.Provider]SpeechSynthesizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		text:   make(map[domain.Provider]TextGenerator),
		image:  make(map[domain.Provider]ImageGenerator),
		speech: make(map[domain.Provider]SpeechSynthesizer),
	}
}

// RegisterText sets the text adapter for p.
func (r *Registry) RegisterText(p domain.Provider, g TextGenerator) *Registry {
	r.text[p] = g
	return r
}

// RegisterImage sets the image adapter for p.
func (r *Registry) RegisterImage(p domain.Provider, g ImageGenerator) *Registry {
	r.image[p] = g
	return r
}

// RegisterSpeech sets the speech adapter for p.
func (r *Registry) RegisterSpeech(p domain.Provider, s SpeechSynthesizer) *Registry {
	r.speech[p] = s
	return r
}

// Text returns the text adapter for p.
func (r *Registry) Text(p domain.Provider) (TextGenerator, error) {
	g, ok := r.text[p]
	if !ok {
		return nil, fmt.Errorf("%w: no text generation for %q", domain.ErrUnsupportedProvider, p)
	}
	return g, nil
}

// Image returns the image adapter for p.
func (r *Registry) Image(p domain.Provider) (ImageGenerator, error) {
	g, ok := r.image[p]
	if !ok {
		return nil, fmt.Errorf("%w: no image generation for %q", domain.ErrUnsupportedProvider, p)
	}
	return g, nil
}

// Speech returns the speech adapter for p.
func (r *Registry) Speech(p domain.Provider) (SpeechSynthesizer, error) {
	s, ok := r.speech[p]
	if !ok {
		return nil, fmt.Errorf("%w: no speech synthesis for %q", domain.ErrUnsupportedProvider, p)
	}
	return s, nil
}

// Generate validates cfg and forwards to the provider's text adapter.
func (r *Registry) Generate(ctx context.Context, cfg domain.ProviderConfig, prompt, system string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	g, err := r.Text(cfg.Provider)
	if err != nil {
		return "", err
	}
	return g.Generate(ctx, cfg, prompt, system)
}
