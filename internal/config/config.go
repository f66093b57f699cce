// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// mcp-manager application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, an optional config file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: name, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the client configuration files this
	// service reads and writes.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and static-content settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the package registry and the local package
	// manager.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the update scan fan-out and the optional
	// background update check.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the service name reported by the health and status endpoints.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3116").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a single inbound request.
	// It must leave room for a full update scan.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory the web UI is served from.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// AllowedOrigins lists the CORS origins allowed to call the API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// DisableMCP turns off the MCP tool endpoint mounted at /mcp.
	// Env: SERVER_DISABLE_MCP
	DisableMCP bool `env:"DISABLE_MCP"`
}

// Storage groups the locations of the client configuration files.
type Storage struct {
	// Files holds the paths of the JSON documents managed by the service.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the paths of the client configuration files.
type Files struct {
	// PrimaryConfigPath is the editor-extension settings file. It receives
	// the full server set, disabled servers included.
	// Env: STORAGE_FILES_PRIMARY_CONFIG_PATH
	PrimaryConfigPath string `env:"PRIMARY_CONFIG_PATH"`

	// SecondaryConfigPath is the desktop client config file. It receives
	// only enabled servers.
	// Env: STORAGE_FILES_SECONDARY_CONFIG_PATH
	SecondaryConfigPath string `env:"SECONDARY_CONFIG_PATH"`

	// DefaultsPath is the bundled document of default server entries that
	// the primary store is merged over. Defaults to config.json inside
	// the static directory.
	// Env: STORAGE_FILES_DEFAULTS_PATH
	DefaultsPath string `env:"DEFAULTS_PATH"`
}

// Adapter holds settings for outbound lookups.
type Adapter struct {
	// RegistryURL is the base URL of the npm registry.
	// Env: ADAPTER_REGISTRY_URL
	RegistryURL string `env:"REGISTRY_URL"`

	// RegistryMode selects how latest versions are fetched: "http" queries
	// the registry directly, "npm" shells out to `npm view`.
	// Env: ADAPTER_REGISTRY_MODE
	RegistryMode string `env:"REGISTRY_MODE"`

	// RegistryTimeout bounds a single registry lookup.
	// Env: ADAPTER_REGISTRY_TIMEOUT
	RegistryTimeout time.Duration `env:"REGISTRY_TIMEOUT"`

	// RetryCount is the number of retries for transient registry failures.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// NPMBinary is the package manager executable.
	// Env: ADAPTER_NPM_BINARY
	NPMBinary string `env:"NPM_BINARY"`

	// PackageManagerTimeout bounds a single package manager query.
	// Env: ADAPTER_PACKAGE_MANAGER_TIMEOUT
	PackageManagerTimeout time.Duration `env:"PACKAGE_MANAGER_TIMEOUT"`
}

// Workers holds settings for concurrent and background work.
type Workers struct {
	// ScanConcurrency caps the number of servers checked at the same time.
	// Env: WORKERS_SCAN_CONCURRENCY
	ScanConcurrency int `env:"SCAN_CONCURRENCY"`

	// UpdateCheckInterval enables a periodic update scan that logs available
	// updates. Zero disables it.
	// Env: WORKERS_UPDATE_CHECK_INTERVAL
	UpdateCheckInterval time.Duration `env:"UPDATE_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in the following order, later non-zero
// fields overriding earlier ones:
//  1. Built-in defaults for the current OS
//  2. Config file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults(defaultConfig()).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
