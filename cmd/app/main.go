package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CraftQuest_Go/internal/bootstrap"
	"github.com/osse101/CraftQuest_Go/internal/concurrency"
	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/handler"
	"github.com/osse101/CraftQuest_Go/internal/quest"
	"github.com/osse101/CraftQuest_Go/internal/server"
	"github.com/osse101/CraftQuest_Go/internal/session"
	"github.com/osse101/CraftQuest_Go/internal/sse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("CraftQuest exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	registry, err := bootstrap.LoadItems(ctx, cfg)
	if err != nil {
		return err
	}

	parser, err := bootstrap.NewRecipeParser(ctx, cfg)
	if err != nil {
		return err
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	hub := bootstrap.InitializeEventStream(bus)

	store, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		hub.Stop()
		return err
	}

	manager := session.NewManager(session.Deps{
		Registry: registry,
		Parser:   parser,
		Labels:   quest.Labels{InProgress: cfg.InProgressLabel, Completed: cfg.CompletedLabel},
		Bus:      bus,
	}, store.SaveState, concurrency.NewLockManager())

	autosave := bootstrap.InitializeAutosave(cfg, store.SaveState, manager)

	handler.InitValidator()
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Events:         sse.Handler(hub),
	}, manager, store.Pool)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Streams:  hub,
		Server:   srv,
		Autosave: haltable(autosave),
		Pool:     store.Pool,
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// haltable keeps a nil *Autosave from becoming a non-nil interface
func haltable(a *bootstrap.Autosave) bootstrap.Halter {
	if a == nil {
		return nil
	}
	return a
}
