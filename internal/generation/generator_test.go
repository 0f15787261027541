package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubText struct {
	reply string
	got   domain.ProviderConfig
	calls int
}

func (s *stubText) Generate(_ context.Context, cfg domain.ProviderConfig, _, _ string) (string, error) {
	s.calls++
	s.got = cfg
	return s.reply, nil
}

type stubImage struct{}

func (stubImage) GenerateImage(context.Context, string, string) (string, error) { return "aW1n", nil }

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	google := &stubText{reply: "from google"}
	groq := &stubText{reply: "from groq"}
	r := NewRegistry().
		RegisterText(domain.ProviderGoogle, google).
		RegisterText(domain.ProviderGroq, groq).
		RegisterImage(domain.ProviderGoogle, stubImage{})

	cfg := domain.ProviderConfig{Provider: domain.ProviderGroq, APIKey: "k", Model: "m"}
	out, err := r.Generate(context.Background(), cfg, "p", "s")
	require.NoError(t, err)
	assert.Equal(t, "from groq", out)
	assert.Equal(t, 0, google.calls)
	assert.Equal(t, cfg, groq.got)

	_, err = r.Image(domain.ProviderGoogle)
	assert.NoError(t, err)
}

func TestRegistry_Unsupported(t *testing.T) {
	t.Parallel()

	r := NewRegistry().RegisterText(domain.ProviderGoogle, &stubText{})

	_, err := r.Text(domain.ProviderOpenAI)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)

	_, err = r.Image(domain.ProviderGroq)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)

	_, err = r.Speech(domain.ProviderGroq)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)

	_, err = r.Generate(context.Background(), domain.ProviderConfig{Provider: "acme", APIKey: "k"}, "p", "")
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)
}

func TestRegistry_MissingKeyNeverCallsVendor(t *testing.T) {
	t.Parallel()

	g := &stubText{}
	r := NewRegistry().RegisterText(domain.ProviderGoogle, g)

	_, err := r.Generate(context.Background(), domain.ProviderConfig{Provider: domain.ProviderGoogle}, "p", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingAPIKey))
	assert.Equal(t, 0, g.calls)
}
