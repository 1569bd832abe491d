package bootstrap

import (
	"io"
	"os"

	"github.com/osse101/CraftQuest_Go/internal/config"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// SetupLogger installs the default slog logger from cfg and logs the startup banner
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger writing to w
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	logger.Info(LogMsgStartingCraftQuest,
		"environment", cfg.Environment,
		"version", cfg.Version)

	logger.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"items", cfg.ItemsConfig,
		"recipe_format", cfg.RecipeFormat)
}
