package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// ValidateEnv rejects an .env file written for a different schema version.
// A missing version is accepted since every key has a default.
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersionKey)
	if !ok || schemaVersion == "" {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Validate checks the loaded configuration. Problems that prevent startup are
// returned as an error; questionable values come back as warnings.
func (c *Config) Validate() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var problems []string
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if info, err := os.Stat(c.DataDir); err != nil || !info.IsDir() {
		problems = append(problems, fmt.Sprintf("DATA_DIR %q is not a readable directory", c.DataDir))
	}
	if c.ReloadInterval < 0 {
		problems = append(problems, fmt.Sprintf("CATALOG_RELOAD_INTERVAL must not be negative, got %s", c.ReloadInterval))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	var warnings []string
	if !validLogLevels[c.LogLevel] {
		warnings = append(warnings, fmt.Sprintf("LOG_LEVEL %q is not recognised, falling back to info", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		warnings = append(warnings, fmt.Sprintf("LOG_FORMAT %q is not recognised, falling back to text", c.LogFormat))
	}
	if c.CostCacheSize <= 0 {
		warnings = append(warnings, "COST_CACHE_SIZE is not positive - cost memoization is disabled")
	}
	if c.ReloadInterval > 0 && c.ReloadInterval < MinReloadInterval {
		warnings = append(warnings, fmt.Sprintf("CATALOG_RELOAD_INTERVAL %s is below %s - using %s", c.ReloadInterval, MinReloadInterval, MinReloadInterval))
		c.ReloadInterval = MinReloadInterval
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - admin routes are unauthenticated")
	} else if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if _, err := os.Stat(c.InfoDir); err != nil {
		warnings = append(warnings, fmt.Sprintf("INFO_DIR %q not found - help topics will be empty", c.InfoDir))
	}
	if _, err := os.Stat(c.ChangelogPath); err != nil {
		warnings = append(warnings, fmt.Sprintf("CHANGELOG_PATH %q not found - changelog will be empty", c.ChangelogPath))
	}

	return warnings, nil
}
