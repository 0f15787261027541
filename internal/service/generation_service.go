package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/events"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/platform/logger"
	"github.com/phrazzld/nani-api/internal/prompt"
)

// TextExtractor reads an inclusive page range of a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, ref string, start, end int) (string, error)
}

// GenerateRequest holds the parameters shared by all content types.
// Difficulty is only read for assessments and GenerateAudio only for podcasts.
type GenerateRequest struct {
	DocumentRef   string
	StartPage     int
	EndPage       int
	Difficulty    string
	GenerateAudio bool
	Provider      domain.ProviderConfig
}

// GenerationService runs the text pipeline for each content type.
type GenerationService interface {
	GenerateAssessment(ctx context.Context, req GenerateRequest) (*domain.AssessmentArtifact, error)
	GenerateComic(ctx context.Context, req GenerateRequest) (*domain.ComicArtifact, error)
	GenerateWorksheet(ctx context.Context, req GenerateRequest) (*domain.WorksheetArtifact, error)
	GeneratePodcast(ctx context.Context, req GenerateRequest) (*domain.PodcastArtifact, error)
}

// Expected artifact sizes. Deviations are logged, not rejected.
const (
	assessmentQuestions = 10
	comicMinPanels      = 6
	comicMaxPanels      = 10
)

type generationServiceImpl struct {
	extractor TextExtractor
	text      generation.TextGenerator
	media     *MediaStage
	emitter   events.EventEmitter
	logger    *slog.Logger

	maxPageSpan int
}

// GenerationOption customizes a GenerationService.
type GenerationOption func(*generationServiceImpl)

// WithMaxPageSpan rejects ranges covering more than n pages. Zero means no limit.
func WithMaxPageSpan(n int) GenerationOption {
	return func(s *generationServiceImpl) { s.maxPageSpan = n }
}

// NewGenerationService wires the pipeline. emitter may be nil.
func NewGenerationService(
	extractor TextExtractor,
	text generation.TextGenerator,
	media *MediaStage,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...GenerationOption,
) (GenerationService, error) {
	if extractor == nil {
		return nil, &GenerationError{Operation: "create_service", Message: "extractor cannot be nil"}
	}
	if text == nil {
		return nil, &GenerationError{Operation: "create_service", Message: "text generator cannot be nil"}
	}
	if media == nil {
		return nil, &GenerationError{Operation: "create_service", Message: "media stage cannot be nil"}
	}
	if logger == nil {
		return nil, &GenerationError{Operation: "create_service", Message: "logger cannot be nil"}
	}

	s := &generationServiceImpl{
		extractor: extractor,
		text:      text,
		media:     media,
		emitter:   emitter,
		logger:    logger.With("component", "generation_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerationError wraps a pipeline failure with the stage it happened in.
// The underlying domain error stays reachable through errors.Is.
type GenerationError struct {
	Operation string
	Message   string
	Err       error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("generation %s failed: %s", e.Operation, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (s *generationServiceImpl) GenerateAssessment(
	ctx context.Context,
	req GenerateRequest,
) (*domain.AssessmentArtifact, error) {
	var difficulty domain.Difficulty
	validate := func() error {
		d, err := domain.ParseDifficulty(req.Difficulty)
		difficulty = d
		return err
	}
	build := func(text string) prompt.Prompt { return prompt.Assessment(text, difficulty) }

	run := s.begin(ctx, domain.ContentAssessment)
	artifact, err := runText[domain.AssessmentArtifact](run, req, validate, build)
	if err != nil {
		return nil, err
	}

	artifact.Difficulty = difficulty.Label()
	if n := len(artifact.Questions); n != assessmentQuestions {
		run.log.WarnContext(run.ctx, "unexpected question count", "want", assessmentQuestions, "got", n)
	}
	run.finish(nil)
	return artifact, nil
}

func (s *generationServiceImpl) GenerateComic(ctx context.Context, req GenerateRequest) (*domain.ComicArtifact, error) {
	run := s.begin(ctx, domain.ContentComic)
	artifact, err := runText[domain.ComicArtifact](run, req, nil, prompt.Comic)
	if err != nil {
		return nil, err
	}

	if n := len(artifact.Panels); n < comicMinPanels || n > comicMaxPanels {
		run.log.WarnContext(run.ctx, "unexpected panel count", "min", comicMinPanels, "max", comicMaxPanels, "got", n)
	}

	run.transition(events.StateMediaGenerating, nil)
	s.media.IllustrateComic(run.ctx, req.Provider, artifact)
	run.finish(nil)
	return artifact, nil
}

func (s *generationServiceImpl) GenerateWorksheet(
	ctx context.Context,
	req GenerateRequest,
) (*domain.WorksheetArtifact, error) {
	run := s.begin(ctx, domain.ContentWorksheet)
	artifact, err := runText[domain.WorksheetArtifact](run, req, nil, prompt.Worksheet)
	if err != nil {
		return nil, err
	}
	run.finish(nil)
	return artifact, nil
}

func (s *generationServiceImpl) GeneratePodcast(ctx context.Context, req GenerateRequest) (*domain.PodcastArtifact, error) {
	run := s.begin(ctx, domain.ContentPodcast)
	artifact, err := runText[domain.PodcastArtifact](run, req, nil, prompt.Podcast)
	if err != nil {
		return nil, err
	}

	if req.GenerateAudio && strings.TrimSpace(artifact.FullScript) != "" {
		run.transition(events.StateMediaGenerating, nil)
		s.media.NarratePodcast(run.ctx, req.Provider, artifact)
	}
	run.finish(nil)
	return artifact, nil
}

// generationRun tracks one request through its states.
type generationRun struct {
	s           *generationServiceImpl
	ctx         context.Context
	id          uuid.UUID
	contentType domain.ContentType
	log         *slog.Logger
}

func (s *generationServiceImpl) begin(ctx context.Context, ct domain.ContentType) *generationRun {
	id := uuid.New()
	log := logger.FromContextOrDefault(ctx, s.logger).With("request_id", id, "content_type", ct)
	return &generationRun{
		s:           s,
		ctx:         logger.WithLogger(ctx, log),
		id:          id,
		contentType: ct,
		log:         log,
	}
}

func (r *generationRun) transition(state events.State, err error) {
	if r.s.emitter == nil {
		return
	}
	if emitErr := r.s.emitter.EmitEvent(r.ctx, events.NewStateEvent(r.id, r.contentType, state, err)); emitErr != nil {
		r.log.WarnContext(r.ctx, "failed to emit state event", "state", state, "error", emitErr)
	}
}

func (r *generationRun) finish(err error) {
	if err != nil {
		r.transition(events.StateFailed, err)
		return
	}
	r.transition(events.StateDone, nil)
}

func (r *generationRun) fail(op, msg string, err error) error {
	r.finish(err)
	return &GenerationError{Operation: op, Message: msg, Err: err}
}

// runText executes Validating → Extracting → Prompting → ParsingResponse and
// returns the decoded artifact. Media and the Done transition are left to the caller.
func runText[T any](
	r *generationRun,
	req GenerateRequest,
	validate func() error,
	build func(string) prompt.Prompt,
) (*T, error) {
	r.transition(events.StateValidating, nil)
	if err := r.s.validate(req); err != nil {
		return nil, r.fail("validate", "invalid request", err)
	}
	if validate != nil {
		if err := validate(); err != nil {
			return nil, r.fail("validate", "invalid request", err)
		}
	}

	r.transition(events.StateExtracting, nil)
	text, err := r.s.extractor.Extract(r.ctx, req.DocumentRef, req.StartPage, req.EndPage)
	if err != nil {
		return nil, r.fail("extract", "failed to extract pages", err)
	}

	r.transition(events.StatePrompting, nil)
	p := build(text)
	output, err := r.s.text.Generate(r.ctx, req.Provider, p.User, p.System)
	if err != nil {
		return nil, r.fail("prompt", "text generation failed", err)
	}

	r.transition(events.StateParsingResponse, nil)
	var artifact T
	if err := generation.Decode(output, &artifact); err != nil {
		r.log.DebugContext(r.ctx, "unparseable model output", "output_length", len(output))
		return nil, r.fail("parse", "model output is not a valid artifact", err)
	}
	return &artifact, nil
}

func (s *generationServiceImpl) validate(req GenerateRequest) error {
	if strings.TrimSpace(req.DocumentRef) == "" {
		return domain.NewValidationError("documentRef", "is required", nil)
	}
	if req.StartPage < 1 {
		return domain.NewValidationError("startPage", "must be at least 1", nil)
	}
	if req.EndPage < req.StartPage {
		return domain.NewValidationError("endPage", "must not be before startPage", nil)
	}
	if s.maxPageSpan > 0 && req.EndPage-req.StartPage+1 > s.maxPageSpan {
		return domain.NewValidationError("endPage",
			fmt.Sprintf("range exceeds %d pages", s.maxPageSpan), nil)
	}
	return req.Provider.Validate()
}
