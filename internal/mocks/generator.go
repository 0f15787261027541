package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/nani-api/internal/domain"
)

// MockTextGenerator implements generation.TextGenerator.
type MockTextGenerator struct {
	GenerateFn func(ctx context.Context, cfg domain.ProviderConfig, prompt, system string) (string, error)

	Reply string
	Err   error

	mu      sync.Mutex
	configs []domain.ProviderConfig
	prompts []string
	systems []string
}

func (m *MockTextGenerator) Generate(
	ctx context.Context,
	cfg domain.ProviderConfig,
	prompt, system string,
) (string, error) {
	m.mu.Lock()
	m.configs = append(m.configs, cfg)
	m.prompts = append(m.prompts, prompt)
	m.systems = append(m.systems, system)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, cfg, prompt, system)
	}
	return m.Reply, m.Err
}

// CallCount reports how many times Generate ran.
func (m *MockTextGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastCall returns the arguments of the most recent Generate call.
func (m *MockTextGenerator) LastCall() (cfg domain.ProviderConfig, prompt, system string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return domain.ProviderConfig{}, "", ""
	}
	n := len(m.prompts) - 1
	return m.configs[n], m.prompts[n], m.systems[n]
}

// MockSpeechSynthesizer implements generation.SpeechSynthesizer.
type MockSpeechSynthesizer struct {
	Audio string
	Err   error

	mu      sync.Mutex
	scripts []string
}

func (m *MockSpeechSynthesizer) Synthesize(_ context.Context, _ string, script string) (string, error) {
	m.mu.Lock()
	m.scripts = append(m.scripts, script)
	m.mu.Unlock()
	return m.Audio, m.Err
}

// Scripts returns every script passed to Synthesize, in call order.
func (m *MockSpeechSynthesizer) Scripts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.scripts...)
}
