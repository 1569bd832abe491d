package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

// APIProbe reports whether the game API is reachable
type APIProbe interface {
	Healthy(ctx context.Context) bool
}

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server    *http.Server
	connected func() bool
	api       APIProbe
}

// NewHTTPServer creates the health server. connected reports gateway state.
func NewHTTPServer(port string, connected func() bool, api APIProbe) *HTTPServer {
	mux := http.NewServeMux()
	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		connected: connected,
		api:       api,
	}
	mux.HandleFunc("/healthz", srv.HandleHealth)
	return srv
}

// Start serves in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServer, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFail, "error", err)
		}
	}()
}

// Stop shuts the server down
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// HandleHealth returns 200 when the gateway and the API are both up, 503 otherwise
func (s *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.connected != nil && s.connected()

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	apiReachable := s.api != nil && s.api.Healthy(ctx)

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if ns := lastCommandUnix.Load(); ns > 0 {
		health.LastCommandTime = time.Unix(0, ns)
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(health)
}
