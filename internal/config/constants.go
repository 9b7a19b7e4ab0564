package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvDataDir          = "DATA_DIR"
	EnvSchemaCheck      = "SCHEMA_CHECK"
	EnvCostCacheSize    = "COST_CACHE_SIZE"
	EnvInfoDir          = "INFO_DIR"
	EnvChangelogPath    = "CHANGELOG_PATH"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvReloadInterval   = "CATALOG_RELOAD_INTERVAL"
	EnvSchemaVersionKey = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultServiceName   = "loadout-calc"
	DefaultVersion       = "dev"
	DefaultDataDir       = "data/items"
	DefaultSchemaCheck   = true
	DefaultCostCacheSize = 512
	DefaultInfoDir       = "configs/info"
	DefaultChangelogPath = "configs/changelog.yaml"

	// DefaultReloadInterval of zero disables polling; SIGHUP and the admin
	// route still reload
	DefaultReloadInterval = 0

	// MinReloadInterval is the shortest accepted polling period
	MinReloadInterval = time.Second
)

// Placeholder values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
