package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nani-api/internal/config"
	"github.com/phrazzld/nani-api/internal/domain"
	"github.com/phrazzld/nani-api/internal/events"
	"github.com/phrazzld/nani-api/internal/extract"
	"github.com/phrazzld/nani-api/internal/generation"
	"github.com/phrazzld/nani-api/internal/platform/blob"
	"github.com/phrazzld/nani-api/internal/platform/gemini"
	"github.com/phrazzld/nani-api/internal/platform/googletts"
	"github.com/phrazzld/nani-api/internal/platform/openai"
	"github.com/phrazzld/nani-api/internal/platform/pdf"
	"github.com/phrazzld/nani-api/internal/platform/postgres"
	"github.com/phrazzld/nani-api/internal/service"
	"github.com/phrazzld/nani-api/internal/service/auth"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	closeBlobs func() error

	jwtService auth.JWTService

	generationService service.GenerationService
	bookService       service.BookService
	subjectService    service.SubjectService
	adminService      service.AdminService
	apiKeyService     service.APIKeyService
}

// newProviderRegistry registers every vendor adapter by capability.
func newProviderRegistry(cfg config.ProvidersConfig, logger *slog.Logger) *generation.Registry {
	geminiOpts := gemini.Options{BaseURL: cfg.GeminiBaseURL}

	return generation.NewRegistry().
		RegisterText(domain.ProviderGoogle, gemini.NewGenerator(logger, geminiOpts)).
		RegisterText(domain.ProviderOpenAI, openai.NewChatGenerator(logger, cfg.OpenAIBaseURL)).
		RegisterText(domain.ProviderGroq, openai.NewGroqGenerator(logger, cfg.GroqBaseURL)).
		RegisterImage(domain.ProviderGoogle, gemini.NewImageGenerator(logger, geminiOpts)).
		RegisterImage(domain.ProviderOpenAI, openai.NewImageGenerator(logger, cfg.OpenAIBaseURL)).
		RegisterSpeech(domain.ProviderGoogle, googletts.New(logger, cfg.TTSEndpoint)).
		RegisterSpeech(domain.ProviderOpenAI, openai.NewSpeechSynthesizer(logger, cfg.OpenAIBaseURL))
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (_ *application, err error) {
	app := &application{config: cfg, logger: logger, db: db}

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	blobs, closeBlobs, err := blob.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob storage: %w", err)
	}
	app.closeBlobs = closeBlobs
	defer func() {
		if err != nil {
			_ = closeBlobs()
		}
	}()
	logger.Info("blob storage ready", "backend", cfg.Storage.Backend)

	bookStore := postgres.NewPostgresBookStore(db, logger)
	subjectStore := postgres.NewPostgresSubjectStore(db, logger)
	settingsStore := postgres.NewPostgresSettingsStore(db)

	registry := newProviderRegistry(cfg.Providers, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	media := service.NewMediaStage(registry, cfg.Generation.ImageRequestsPerMinute, logger)
	extractor := extract.New(pdf.NewStore(blobs))

	app.generationService, err = service.NewGenerationService(
		extractor,
		registry,
		media,
		emitter,
		logger,
		service.WithMaxPageSpan(cfg.Generation.MaxPageSpan),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	app.bookService, err = service.NewBookService(service.NewBookRepositoryAdapter(bookStore, db), blobs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create book service: %w", err)
	}

	app.subjectService, err = service.NewSubjectService(subjectStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject service: %w", err)
	}

	app.adminService, err = service.NewAdminService(
		settingsStore,
		app.jwtService,
		auth.NewBcryptVerifier(),
		cfg.Auth.DefaultAdminPassword,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %w", err)
	}

	app.apiKeyService, err = service.NewAPIKeyService(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key service: %w", err)
	}

	logger.Info("application initialized",
		"max_page_span", cfg.Generation.MaxPageSpan,
		"image_requests_per_minute", cfg.Generation.ImageRequestsPerMinute)
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.closeBlobs != nil {
		if err := app.closeBlobs(); err != nil {
			app.logger.Error("error closing blob storage", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
