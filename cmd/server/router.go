package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/nani-api/internal/api"
	apiMiddleware "github.com/phrazzld/nani-api/internal/api/middleware"
)

func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	generate := api.NewGenerateHandler(app.generationService)
	books := api.NewBookHandler(app.bookService, app.config.Storage.MaxUploadMB)
	subjects := api.NewSubjectHandler(app.subjectService)
	admin := api.NewAdminHandler(app.adminService)
	apiKey := api.NewAPIKeyHandler(app.apiKeyService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/providers", api.Providers)
		r.Post("/api-key", apiKey.Check)

		r.Route("/generate", func(r chi.Router) {
			r.Post("/assessment", generate.Assessment)
			r.Post("/comic", generate.Comic)
			r.Post("/worksheet", generate.Worksheet)
			r.Post("/podcast", generate.Podcast)
		})

		r.Get("/books", books.List)
		r.Get("/books/{id}", books.Get)
		r.Get("/subjects", subjects.List)

		r.Post("/admin/login", admin.Login)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAdmin)
			r.Put("/admin/password", admin.ChangePassword)
			r.Post("/books", books.Upload)
			r.Delete("/books/{id}", books.Delete)
			r.Post("/subjects", subjects.Create)
			r.Delete("/subjects/{id}", subjects.Delete)
		})
	})

	r.Get("/health", api.Health)

	return r
}
