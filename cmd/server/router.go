package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/klowran/cats-api/internal/api"
	apiMiddleware "github.com/klowran/cats-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Reads are public; every mutating route sits
// behind bearer-token authentication.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	catHandler := api.NewCatHandler(app.catService)
	breedHandler := api.NewBreedHandler(app.breedService)
	identityHandler := api.NewIdentityHandler(app.identityService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Identity endpoints (public)
		r.Post("/identity/register", identityHandler.Register)
		r.Post("/identity/login", identityHandler.Login)

		// Read endpoints (public)
		r.Get("/cats", catHandler.List)
		r.Get("/cats/{id}", catHandler.Get)
		r.Get("/breeds", breedHandler.List)
		r.Get("/breeds/{id}", breedHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/cats", catHandler.Create)
			r.Put("/cats/{id}", catHandler.Update)
			r.Delete("/cats/{id}", catHandler.Delete)
			r.Post("/cats/upload-csv", catHandler.UploadCSV)

			r.Post("/breeds", breedHandler.Create)
			r.Put("/breeds/{id}", breedHandler.Update)
			r.Delete("/breeds/{id}", breedHandler.Delete)
			r.Post("/breeds/upload-csv", breedHandler.UploadCSV)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
