package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/events"
	"github.com/phrazzld/nani-api/internal/extract"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type stateRecorder struct {
	states []events.State
}

func (r *stateRecorder) HandleEvent(_ context.Context, e *events.StateEvent) error {
	r.states = append(r.states, e.State)
	return nil
}

type fixture struct {
	svc      GenerationService
	extract  *fakeExtractor
	text     *fakeText
	images   *fakeImages
	speech   *mocks.MockSpeechSynthesizer
	recorder *stateRecorder
}

func newFixture(t *testing.T, reply string, opts ...GenerationOption) *fixture {
	t.Helper()
	f := &fixture{
		extract:  &fakeExtractor{text: "植物透過光合作用製造養分。"},
		text:     &fakeText{reply: reply},
		images:   &fakeImages{},
		speech:   &mocks.MockSpeechSynthesizer{Audio: "bXAz"},
		recorder: &stateRecorder{},
	}
	lookup := &fakeLookup{
		images: map[domain.Provider]generation.ImageGenerator{
			domain.ProviderGoogle: f.images,
			domain.ProviderOpenAI: f.images,
		},
		speech: map[domain.Provider]generation.SpeechSynthesizer{
			domain.ProviderGoogle: f.speech,
			domain.ProviderOpenAI: f.speech,
		},
	}
	emitter := events.NewInMemoryEventEmitter(discard)
	emitter.RegisterHandler(f.recorder)

	svc, err := NewGenerationService(f.extract, f.text, NewMediaStage(lookup, 0, discard), emitter, discard, opts...)
	require.NoError(t, err)
	f.svc = svc
	return f
}

func request(p domain.Provider) GenerateRequest {
	return GenerateRequest{
		DocumentRef: "book.pdf",
		StartPage:   1,
		EndPage:     3,
		Provider:    domain.ProviderConfig{Provider: p, APIKey: "key", Model: "m"},
	}
}

func TestGenerateAssessment(t *testing.T) {
	t.Parallel()

	reply := "```json\n{\"title\":\"光合作用\",\"difficulty\":\"whatever\",\"questions\":" + questionsJSON(10) + "}\n```"
	f := newFixture(t, reply)

	req := request(domain.ProviderGoogle)
	req.Difficulty = "basic"

	got, err := f.svc.GenerateAssessment(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 10)
	assert.Equal(t, "基礎", got.Difficulty)
	assert.Contains(t, f.text.prompt, "植物透過光合作用製造養分。")
	assert.NotEmpty(t, f.text.system)

	assert.Equal(t, []events.State{
		events.StateValidating,
		events.StateExtracting,
		events.StatePrompting,
		events.StateParsingResponse,
		events.StateDone,
	}, f.recorder.states)
}

func TestGenerateAssessment_QuestionCountIsNotEnforced(t *testing.T) {
	t.Parallel()

	f := newFixture(t, `{"title":"t","questions":`+questionsJSON(7)+`}`)
	req := request(domain.ProviderGoogle)
	req.Difficulty = "advanced"

	got, err := f.svc.GenerateAssessment(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 7)
	assert.Equal(t, "進階", got.Difficulty)
}

func TestGenerate_ValidationNeverCallsVendor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*GenerateRequest)
		wantErr error
	}{
		{name: "unknown difficulty", mutate: func(r *GenerateRequest) { r.Difficulty = "expert" }, wantErr: domain.ErrValidation},
		{name: "missing document", mutate: func(r *GenerateRequest) { r.DocumentRef = "" }, wantErr: domain.ErrValidation},
		{name: "start page zero", mutate: func(r *GenerateRequest) { r.StartPage = 0 }, wantErr: domain.ErrValidation},
		{name: "end before start", mutate: func(r *GenerateRequest) { r.StartPage, r.EndPage = 5, 2 }, wantErr: domain.ErrValidation},
		{name: "missing key", mutate: func(r *GenerateRequest) { r.Provider.APIKey = "" }, wantErr: domain.ErrMissingAPIKey},
		{name: "unknown provider", mutate: func(r *GenerateRequest) { r.Provider.Provider = "acme" }, wantErr: domain.ErrUnsupportedProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "{}")
			req := request(domain.ProviderGoogle)
			req.Difficulty = "medium"
			tt.mutate(&req)

			_, err := f.svc.GenerateAssessment(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.text.calls)
			assert.Equal(t, 0, f.extract.calls)
			assert.Equal(t, events.StateFailed, f.recorder.states[len(f.recorder.states)-1])
		})
	}
}

func TestGenerate_MaxPageSpan(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "{}", WithMaxPageSpan(2))
	_, err := f.svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "endPage", ve.Field)
}

func TestGenerate_PipelineErrors(t *testing.T) {
	t.Parallel()

	t.Run("no content", func(t *testing.T) {
		f := newFixture(t, "{}")
		f.extract.err = domain.ErrNoContent
		_, err := f.svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))
		assert.ErrorIs(t, err, domain.ErrNoContent)
		assert.Equal(t, 0, f.text.calls)
	})

	t.Run("vendor failure propagates unchanged", func(t *testing.T) {
		f := newFixture(t, "")
		vendor := &domain.ProviderCallError{Provider: domain.ProviderGoogle, StatusCode: 401, Message: "bad key"}
		f.text.err = vendor
		_, err := f.svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))

		var pe *domain.ProviderCallError
		require.ErrorAs(t, err, &pe)
		assert.Same(t, vendor, pe)
	})

	t.Run("prose reply is a format error", func(t *testing.T) {
		f := newFixture(t, "Sorry, I cannot produce that.")
		_, err := f.svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))
		assert.ErrorIs(t, err, domain.ErrFormat)
		assert.Equal(t, events.StateFailed, f.recorder.states[len(f.recorder.states)-1])
	})
}

func TestGenerateWorksheet_PassesUnknownFieldsThrough(t *testing.T) {
	t.Parallel()

	f := newFixture(t, `{"title":"學習單","topic":"植物","sections":[],"teacherNotes":"bring leaves"}`)
	got, err := f.svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))
	require.NoError(t, err)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"teacherNotes":"bring leaves"`)
}

func TestGenerateComic(t *testing.T) {
	t.Parallel()

	reply := `{"title":"光的旅行","characters":[{"name":"小明","description":"student"}],"panels":` + panelsJSON(6) + `}`

	t.Run("each panel is illustrated in order", func(t *testing.T) {
		f := newFixture(t, reply)
		got, err := f.svc.GenerateComic(context.Background(), request(domain.ProviderOpenAI))
		require.NoError(t, err)
		require.Len(t, got.Panels, 6)

		for i, p := range got.Panels {
			assert.True(t, p.ImageGenerated)
			assert.Equal(t, NoteImageGenerated, p.ImageNote)
			assert.NotEmpty(t, p.ImageBase64)
			assert.Contains(t, f.images.prompts[i], p.Scene)
		}
		assert.Contains(t, f.recorder.states, events.StateMediaGenerating)
	})

	t.Run("unsupported provider annotates every panel", func(t *testing.T) {
		f := newFixture(t, reply)
		got, err := f.svc.GenerateComic(context.Background(), request(domain.ProviderGroq))
		require.NoError(t, err)

		for _, p := range got.Panels {
			assert.False(t, p.ImageGenerated)
			assert.Equal(t, "Groq 不支援圖片生成，僅顯示腳本", p.ImageNote)
			assert.Empty(t, p.ImageBase64)
		}
		assert.Empty(t, f.images.prompts)
	})
}

func TestGeneratePodcast(t *testing.T) {
	t.Parallel()

	reply := `{"title":"光合作用","duration_estimate":"約 5 分鐘","segments":[{"type":"intro","text":"hi"}],"full_script":"大家好。"}`

	t.Run("audio not requested", func(t *testing.T) {
		f := newFixture(t, reply)
		got, err := f.svc.GeneratePodcast(context.Background(), request(domain.ProviderGoogle))
		require.NoError(t, err)
		assert.Equal(t, 0, len(f.speech.Scripts()))
		assert.Nil(t, got.AudioGenerated)

		out, err := json.Marshal(got)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "audioGenerated")
	})

	t.Run("audio generated", func(t *testing.T) {
		f := newFixture(t, reply)
		req := request(domain.ProviderGoogle)
		req.GenerateAudio = true

		got, err := f.svc.GeneratePodcast(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, len(f.speech.Scripts()))
		require.NotNil(t, got.AudioGenerated)
		assert.True(t, *got.AudioGenerated)
		assert.Equal(t, "bXAz", got.AudioBase64)
	})

	t.Run("audio failure never fails the request", func(t *testing.T) {
		f := newFixture(t, reply)
		f.speech.Err = errors.New("dial tcp: connection refused")
		req := request(domain.ProviderOpenAI)
		req.GenerateAudio = true

		got, err := f.svc.GeneratePodcast(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, got.AudioGenerated)
		assert.False(t, *got.AudioGenerated)
		assert.Equal(t, NoteAudioUnavailable, got.AudioError)
	})

	t.Run("empty script skips audio", func(t *testing.T) {
		f := newFixture(t, `{"title":"t","full_script":"  "}`)
		req := request(domain.ProviderGoogle)
		req.GenerateAudio = true

		got, err := f.svc.GeneratePodcast(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 0, len(f.speech.Scripts()))
		assert.Nil(t, got.AudioGenerated)
	})
}

func TestNewGenerationService_RequiresDependencies(t *testing.T) {
	t.Parallel()

	media := NewMediaStage(&fakeLookup{}, 0, discard)
	_, err := NewGenerationService(nil, &fakeText{}, media, nil, discard)
	assert.Error(t, err)
	_, err = NewGenerationService(&fakeExtractor{}, nil, media, nil, discard)
	assert.Error(t, err)
	_, err = NewGenerationService(&fakeExtractor{}, &fakeText{}, nil, nil, discard)
	assert.Error(t, err)
	_, err = NewGenerationService(&fakeExtractor{}, &fakeText{}, media, nil, nil)
	assert.Error(t, err)
}

type blankDoc struct{ pages int }

func (d blankDoc) PageCount() int { return d.pages }

func (d blankDoc) PageText(int) (string, error) { return "", nil }

func (d blankDoc) Close() error { return nil }

type blankStore struct{}

func (blankStore) Open(context.Context, string) (extract.Document, error) {
	return blankDoc{pages: 3}, nil
}

func TestGenerationService_ScannedRangeNeverCallsProvider(t *testing.T) {
	text := &fakeText{reply: `{"title":"x"}`}
	svc, err := NewGenerationService(extract.New(blankStore{}), text, NewMediaStage(&fakeLookup{}, 0, discard), nil, discard)
	require.NoError(t, err)

	_, err = svc.GenerateWorksheet(context.Background(), request(domain.ProviderGoogle))

	assert.ErrorIs(t, err, domain.ErrNoContent)
	assert.Equal(t, 0, text.calls)
}
