// Package api exposes the ATLAX backend over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atlax/atlax/internal/assets"
	"github.com/atlax/atlax/internal/auth"
	"github.com/atlax/atlax/internal/middleware"
	"github.com/atlax/atlax/internal/storage"
)

// Server holds the HTTP server dependencies.
type Server struct {
	store        storage.Store
	authn        auth.Authenticator
	jwt          *auth.JWTManager
	ingestor     *assets.Ingestor
	welcomeGrant int64
	router       chi.Router
}

// Options configures a Server beyond its required dependencies.
type Options struct {
	// AllowedOrigins is the CORS allowlist. Empty means localhost only.
	AllowedOrigins []string

	// WelcomeGrant is the currency credited to new accounts.
	WelcomeGrant int64
}

// New creates a new API server.
func New(store storage.Store, authn auth.Authenticator, jwt *auth.JWTManager, ingestor *assets.Ingestor, opts Options) *Server {
	s := &Server{
		store:        store,
		authn:        authn,
		jwt:          jwt,
		ingestor:     ingestor,
		welcomeGrant: opts.WelcomeGrant,
		router:       chi.NewRouter(),
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	s.setupMiddleware(origins)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.router.Use(middleware.Metrics)
	s.router.Use(middleware.Logging)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Public surface: browsing works without an account.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(s.jwt))

			r.Post("/auth/register", s.handleRegister)
			r.Post("/auth/login", s.handleLogin)

			r.Get("/catalog", s.handleGetCatalog)
			r.Get("/catalog/browse", s.handleBrowseCatalog)
			r.Get("/catalog/avatars", s.handleGetAvatarCatalog)

			r.Get("/experiences", s.handleListExperiences)
			r.Get("/experiences/{experienceID}", s.handleGetExperience)
			r.Get("/experiences/{experienceID}/reviews", s.handleListReviews)

			r.Get("/news", s.handleListNews)
		})

		// Everything that reads or writes per-user state requires a session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwt))

			r.Get("/items", s.handleListUserItems)
			r.Post("/items", s.handleUploadItem)

			r.Get("/avatar", s.handleGetAvatar)
			r.Put("/avatar", s.handleSaveAvatar)
			r.Post("/avatar/toggle", s.handleToggleAvatar)
			r.Get("/avatar/scene", s.handleGetAvatarScene)

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)

			r.Post("/experiences/{experienceID}/reviews", s.handleAddReview)

			r.Get("/friends", s.handleListFriends)
			r.Get("/friends/activity", s.handleListFriendActivity)

			r.Get("/billing/transactions", s.handleListTransactions)
		})
	})

	// Uploaded model files are served as-is.
	if s.ingestor != nil {
		s.router.Handle("/uploads/*", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(s.ingestor.Dir()))))
	}

	s.router.Handle("/metrics", promhttp.Handler())
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
