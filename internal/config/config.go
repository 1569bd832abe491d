package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CraftQuest_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxIdle      time.Duration
	DBMaxLife      time.Duration
	DBMigrate      bool
	APIKey         string // API key for authentication
	TrustedProxies []string
	ItemsConfig    string
	RecipeFormat   string

	// AutosaveInterval is how often live sessions are written to the store; zero disables it
	AutosaveInterval time.Duration

	InProgressLabel string
	CompletedLabel  string

	DiscordToken  string
	DiscordAppID  string
	APIURL        string
	CommandPrefix string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "craftquest"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "craftquest"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration("DB_MAX_IDLE", 5*time.Minute),
		DBMaxLife:  getEnvAsDuration("DB_MAX_LIFE", time.Hour),
		DBMigrate:  getEnvAsBool("DB_MIGRATE", true),

		APIKey:       getEnv("API_KEY", ""),
		ItemsConfig:  getEnv("ITEMS_CONFIG_PATH", ConfigPathItems),
		RecipeFormat: strings.ToLower(getEnv("RECIPE_FORMAT", RecipeFormatAuto)),

		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", 0),

		InProgressLabel: getEnv("QUESTS_IN_PROGRESS_LABEL", domain.DefaultInProgressLabel),
		CompletedLabel:  getEnv("QUESTS_COMPLETED_LABEL", domain.DefaultCompletedLabel),

		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:  getEnv("DISCORD_APP_ID", ""),
		APIURL:        getEnv("API_URL", DefaultAPIURL),
		CommandPrefix: getEnv("COMMAND_PREFIX", DefaultCommandPrefix),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	switch cfg.RecipeFormat {
	case RecipeFormatAuto, RecipeFormatColon, RecipeFormatLegacy:
	default:
		return nil, fmt.Errorf("invalid RECIPE_FORMAT value %q (expected auto, colon or legacy)", cfg.RecipeFormat)
	}

	if cfg.AutosaveInterval < 0 {
		return nil, fmt.Errorf("invalid AUTOSAVE_INTERVAL value %s (must not be negative)", cfg.AutosaveInterval)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
