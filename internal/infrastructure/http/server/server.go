// Package server provides the HTTP server and route configuration
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/mirepoix/v1/internal/infrastructure/config"
	"github.com/mirepoix/v1/internal/infrastructure/http/handlers"
	"github.com/mirepoix/v1/internal/infrastructure/http/middleware"
)

// Server wraps the HTTP server with its router and configuration
type Server struct {
	httpServer *http.Server
	router     chi.Router
	config     *config.Config
	logger     *zap.Logger
}

// Handlers groups the API handlers the server routes to
type Handlers struct {
	Recipes *handlers.RecipeHandler
	Catalog *handlers.CatalogHandler
	Lists   *handlers.ListHandler
}

// New creates a configured HTTP server
func New(cfg *config.Config, h Handlers, logger *zap.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger.Named("http-server"),
	}

	s.setupMiddleware()
	s.setupRoutes(h)

	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	if cfg.Server.EnableHTTP2 {
		if err := http2.ConfigureServer(s.httpServer, &http2.Server{}); err != nil {
			return nil, fmt.Errorf("failed to configure HTTP/2: %w", err)
		}
	}

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		s.router.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	s.router.Use(middleware.RateLimit(s.config.RateLimit))
	s.router.Use(middleware.Metrics())
	s.router.Use(chimiddleware.Timeout(s.config.Server.WriteTimeout))
	s.router.Use(chimiddleware.Compress(5))
}

func (s *Server) setupRoutes(h Handlers) {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	adminOnly := middleware.AdminOnly(s.config.Auth.JWTSecret, s.logger)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Shopper-facing endpoints
		r.Get("/recipes", h.Recipes.List)
		r.Get("/recipes/{id}", h.Recipes.Get)
		r.Get("/categories", h.Catalog.ListCategories)
		r.Get("/units", h.Catalog.ListUnits)
		r.Get("/ingredients", h.Catalog.ListIngredients)

		r.Post("/shopping-list/preview", h.Lists.Preview)
		r.Post("/lists", h.Lists.Create)
		r.Get("/lists", h.Lists.List)
		r.Get("/lists/{id}", h.Lists.Get)
		r.Patch("/lists/{id}/items/{itemID}", h.Lists.ToggleItem)

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/recipes", h.Recipes.Create)
			r.Put("/recipes/{id}", h.Recipes.Update)
			r.Delete("/recipes/{id}", h.Recipes.Delete)
			r.Post("/recipes/{id}/publish", h.Recipes.Publish)
			r.Post("/recipes/{id}/unpublish", h.Recipes.Unpublish)
			r.Put("/recipes/{id}/image", h.Recipes.UploadImage)

			r.Post("/categories", h.Catalog.CreateCategory)
			r.Put("/categories/{id}", h.Catalog.UpdateCategory)
			r.Delete("/categories/{id}", h.Catalog.DeleteCategory)
			r.Put("/categories/order", h.Catalog.ReorderCategories)

			r.Post("/units", h.Catalog.CreateUnit)
			r.Put("/units/{id}", h.Catalog.UpdateUnit)
			r.Delete("/units/{id}", h.Catalog.DeleteUnit)

			r.Post("/ingredients", h.Catalog.CreateIngredient)
			r.Put("/ingredients/{id}", h.Catalog.UpdateIngredient)
			r.Delete("/ingredients/{id}", h.Catalog.DeleteIngredient)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, s.config.App.Version)
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.httpServer.Addr),
		zap.Bool("http2", s.config.Server.EnableHTTP2),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
