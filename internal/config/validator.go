package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// PostgresEnvVars must be set when PERSISTENCE=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks the schema version, when present, and the variables the
// selected backend needs
func ValidateEnv(cfg *Config) error {
	if schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	if cfg.Persistence != PersistencePostgres {
		return nil
	}

	var missing []string
	for _, envVar := range PostgresEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for postgres persistence: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(cfg); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.Persistence == PersistenceMemory && cfg.IsProduction() {
		warnings = append(warnings, "PERSISTENCE=memory in production - inventories are lost on restart")
	}

	if cfg.Persistence == PersistencePostgres && os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.DevMode && cfg.IsProduction() {
		warnings = append(warnings, "DEV_MODE is enabled in production - cooldowns are disabled")
	}

	return warnings, nil
}
