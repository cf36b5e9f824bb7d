// Package http provides HTTP routing, middleware configuration and
// handlers for the Star Wars blog API.
package http

import (
	"net/http"

	"github.com/atinyakov/starwars-api/internal/errs"
	"github.com/atinyakov/starwars-api/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves the API.
//
// Routes:
//
//	GET    /                       → sitemap of registered routes
//	GET    /user                   → usersHandler.Hello
//	GET    /users                  → usersHandler.List
//	POST   /users                  → usersHandler.Create
//	GET    /users/{id}/favorites   → usersHandler.Favorites
//	GET    /people                 → peopleHandler.List
//	GET    /people/{id}            → peopleHandler.Get
//	POST   /newpeople              → peopleHandler.Create
//	DELETE /deletepeople/{id}      → peopleHandler.Delete
//	GET    /planets                → planetHandler.List
//	GET    /planets/{id}           → planetHandler.Get
//	POST   /planets                → planetHandler.Create
//	DELETE /planets/{id}           → planetHandler.Delete
//	POST   /favorites              → favoriteHandler.Create
//
// Middleware chain (applied in order):
//  1. RequestID                          — assigns X-Request-ID
//  2. WithRequestLogging(logger)         — logs each request
//  3. Recoverer                          — turns panics into 500
//  4. CORS(allowedOrigins)               — cross-origin access
//  5. AllowContentType("application/json") — rejects non-JSON bodies
func NewRouter(
	peopleHandler *PeopleHandler,
	planetHandler *PlanetHandler,
	userHandler *UserHandler,
	favoriteHandler *FavoriteHandler,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	// Only allow request bodies with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	r.Get("/user", userHandler.Hello)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id:[0-9]+}/favorites", userHandler.Favorites)
	})

	r.Get("/people", peopleHandler.List)
	r.Get("/people/{id:[0-9]+}", peopleHandler.Get)
	r.Post("/newpeople", peopleHandler.Create)
	r.Delete("/deletepeople/{id:[0-9]+}", peopleHandler.Delete)

	r.Route("/planets", func(r chi.Router) {
		r.Get("/", planetHandler.List)
		r.Post("/", planetHandler.Create)
		r.Get("/{id:[0-9]+}", planetHandler.Get)
		r.Delete("/{id:[0-9]+}", planetHandler.Delete)
	})

	r.Post("/favorites", favoriteHandler.Create)

	r.Get("/", sitemapHandler(r, logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, logger, errs.NewNotFoundError("resource not found"), "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, messageResponse{Message: "method not allowed"})
	})

	return r
}
