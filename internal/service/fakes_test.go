package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/generation"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(context.Context, string, int, int) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeText struct {
	reply  string
	err    error
	calls  int
	prompt string
	system string
}

func (f *fakeText) Generate(_ context.Context, _ domain.ProviderConfig, p, s string) (string, error) {
	f.calls++
	f.prompt, f.system = p, s
	return f.reply, f.err
}

type fakeImages struct {
	mu      sync.Mutex
	prompts []string
	failAt  map[int]bool
	emptyAt map[int]bool
}

func (f *fakeImages) GenerateImage(_ context.Context, _ string, p string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, p)
	n := len(f.prompts)
	if f.failAt[n] {
		return "", &domain.ProviderCallError{Provider: domain.ProviderOpenAI, StatusCode: 500, Message: "boom"}
	}
	if f.emptyAt[n] {
		return "", nil
	}
	return fmt.Sprintf("img-%d", n), nil
}

type fakeLookup struct {
	images map[domain.Provider]generation.ImageGenerator
	speech map[domain.Provider]generation.SpeechSynthesizer
}

func (l *fakeLookup) Image(p domain.Provider) (generation.ImageGenerator, error) {
	if g, ok := l.images[p]; ok {
		return g, nil
	}
	return nil, domain.ErrUnsupportedProvider
}

func (l *fakeLookup) Speech(p domain.Provider) (generation.SpeechSynthesizer, error) {
	if s, ok := l.speech[p]; ok {
		return s, nil
	}
	return nil, domain.ErrUnsupportedProvider
}

func questionsJSON(n int) string {
	qs := make([]string, n)
	for i := range qs {
		qs[i] = fmt.Sprintf(`{"number":%d,"type":"choice","question":"q%d","options":["A. x","B. y"],"answer":"A","explanation":"e"}`, i+1, i+1)
	}
	return "[" + strings.Join(qs, ",") + "]"
}

func panelsJSON(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf(`{"number":%d,"scene":"scene %d","dialogue":"d%d"}`, i+1, i+1, i+1)
	}
	return "[" + strings.Join(ps, ",") + "]"
}
