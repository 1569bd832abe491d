package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CraftQuest_Go/internal/bootstrap"
	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/discord"
)

// DefaultHealthPort serves the bot's own /healthz
const DefaultHealthPort = "8082"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(discord.Config{
		Token:  cfg.DiscordToken,
		AppID:  cfg.DiscordAppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
		Prefix: cfg.CommandPrefix,
		Notify: os.Getenv("DISCORD_NOTIFY") != "false",
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	health := discord.NewHTTPServer(healthPort, bot.Connected, bot.Client)
	health.Start()

	if err := bot.Start(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// The bot still answers prefixed messages and previously registered commands
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	bot.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := health.Stop(shutdownCtx); err != nil {
		slog.Error("Health server shutdown failed", "error", err)
	}
}
