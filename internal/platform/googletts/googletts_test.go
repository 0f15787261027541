package googletts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	t.Parallel()

	var req struct {
		Input struct {
			Text string `json:"text"`
		} `json:"input"`
		Voice struct {
			LanguageCode string `json:"languageCode"`
			Name         string `json:"name"`
			SsmlGender   string `json:"ssmlGender"`
		} `json:"voice"`
		AudioConfig struct {
			AudioEncoding string  `json:"audioEncoding"`
			SpeakingRate  float64 `json:"speakingRate"`
		} `json:"audioConfig"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/text:synthesize"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"audioContent":"bXAzLWJ5dGVz"}`))
	}))
	defer srv.Close()

	out, err := New(nil, srv.URL+"/").Synthesize(context.Background(), "AIza-test", "大家好。")
	require.NoError(t, err)
	assert.Equal(t, "bXAzLWJ5dGVz", out)

	assert.Equal(t, "大家好。", req.Input.Text)
	assert.Equal(t, LanguageCode, req.Voice.LanguageCode)
	assert.Equal(t, VoiceName, req.Voice.Name)
	assert.Equal(t, "FEMALE", req.Voice.SsmlGender)
	assert.Equal(t, "MP3", req.AudioConfig.AudioEncoding)
	assert.InDelta(t, 0.95, req.AudioConfig.SpeakingRate, 1e-9)
}

func TestSynthesize_VendorError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"Cloud Text-to-Speech API has not been used in project","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	_, err := New(nil, srv.URL+"/").Synthesize(context.Background(), "AIza-test", "哈囉")

	var pe *domain.ProviderCallError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusForbidden, pe.StatusCode)
	assert.Equal(t, domain.ProviderGoogle, pe.Provider)
}

func TestSynthesize_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := New(nil, "").Synthesize(context.Background(), "", "哈囉")
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}
