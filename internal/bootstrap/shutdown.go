package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component stopped with a deadline
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer releases a resource without a deadline
type Closer interface {
	Close()
}

// Halter stops a background loop immediately
type Halter interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Streams  Halter
	Server   Stopper
	Autosave Halter
	Pool     Closer
}

// GracefulShutdown ends open event streams and stops the HTTP server so in-flight
// requests finish against a live pool. Autosave is stopped before the pool closes.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Streams != nil {
		slog.Info(LogMsgClosingStreams)
		components.Streams.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Autosave != nil {
		slog.Info(LogMsgStoppingAutosave)
		components.Autosave.Stop()
	}

	if components.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Pool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
