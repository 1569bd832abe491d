package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout the server understands
const ExpectedEnvSchemaVersion = "1.0"

// Placeholder values shipped in example .env files
const (
	PlaceholderDBPassword = "change_this_secure_password"
	PlaceholderAPIKey     = "generate_with_openssl_rand_hex_32"
)

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// RequiredEnvVars must be set for the game server
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// RequiredDiscordEnvVars must be set for the discord bot
var RequiredDiscordEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

func missingVars(names []string) []string {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateEnv checks the schema version and the server's required variables
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, schemaVersion)
	}

	if missing := missingVars(RequiredEnvVars); len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateDiscordEnv checks the bot's credentials. The application id is a numeric snowflake.
func ValidateDiscordEnv() error {
	if missing := missingVars(RequiredDiscordEnvVars); len(missing) > 0 {
		return fmt.Errorf("missing required discord environment variables: %s", strings.Join(missing, ", "))
	}
	appID := os.Getenv("DISCORD_APP_ID")
	if _, err := strconv.ParseUint(appID, 10, 64); err != nil {
		return fmt.Errorf("DISCORD_APP_ID %q is not a numeric application id", appID)
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports weak secrets as warnings
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == PlaceholderDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value, set a real password")
	}

	switch key := os.Getenv("API_KEY"); {
	case key == PlaceholderAPIKey:
		warnings = append(warnings, "API_KEY is the example value, generate one with: openssl rand -hex 32")
	case len(key) < MinAPIKeyLength:
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}

	return warnings, nil
}
