package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	LogDir         string
	Environment    string
	ServiceName    string
	Version        string
	DataDir        string // directory of item JSON files
	SchemaCheck    bool   // validate each item file against the item schema
	CostCacheSize  int
	InfoDir        string
	ChangelogPath  string
	APIKey         string // optional; guards admin routes when set
	TrustedProxies []string
	ReloadInterval time.Duration // 0 disables polling the data directory
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:         getEnv(EnvLogDir, DefaultLogDir),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		DataDir:        getEnv(EnvDataDir, DefaultDataDir),
		SchemaCheck:    getEnvAsBool(EnvSchemaCheck, DefaultSchemaCheck),
		CostCacheSize:  getEnvAsInt(EnvCostCacheSize, DefaultCostCacheSize),
		InfoDir:        getEnv(EnvInfoDir, DefaultInfoDir),
		ChangelogPath:  getEnv(EnvChangelogPath, DefaultChangelogPath),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		ReloadInterval: getEnvAsDuration(EnvReloadInterval, DefaultReloadInterval),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a local dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default on
// absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts time.ParseDuration syntax ("30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
