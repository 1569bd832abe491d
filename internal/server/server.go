package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/CraftQuest_Go/docs"
	"github.com/osse101/CraftQuest_Go/internal/handler"
	"github.com/osse101/CraftQuest_Go/internal/logger"
	"github.com/osse101/CraftQuest_Go/internal/metrics"
)

// Options configure the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// Events serves the event stream; the route is omitted when nil
	Events http.Handler
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router. ready may be nil when no save store is configured.
func NewServer(opts Options, sessions handler.SessionService, ready handler.Pinger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, sessions, ready),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter returns the full middleware stack and route table
func NewRouter(opts Options, sessions handler.SessionService, ready handler.Pinger) http.Handler {
	r := chi.NewRouter()
	detector := NewAbuseDetector()

	// Outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/command", handler.HandleCommand(sessions))
		r.Get("/recipes", handler.HandleGetRecipes(sessions))
		r.Post("/craft", handler.HandleCraft(sessions))
		r.Get("/quests", handler.HandleGetQuests(sessions))
		r.Get("/inventory", handler.HandleGetInventory(sessions))
		r.Post("/save", handler.HandleSave(sessions))
		r.Post("/load", handler.HandleLoad(sessions))
		r.Get("/saves", handler.HandleListSaves(sessions))
		r.Delete("/save", handler.HandleDeleteSave(sessions))
		if opts.Events != nil {
			r.Get("/events", opts.Events.ServeHTTP)
		}
	})

	return r
}

// Start serves until Stop is called. A graceful stop returns nil.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
