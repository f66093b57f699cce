package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	defaultAppName               = "mcp-manager"
	defaultAppVersion            = "1.0.0"
	defaultLogLevel              = "info"
	defaultHTTPAddress           = "0.0.0.0:3116"
	defaultRequestTimeout        = 2 * time.Minute
	defaultStaticDir             = "web"
	defaultRegistryURL           = "https://registry.npmjs.org"
	defaultRegistryTimeout       = 10 * time.Second
	defaultRetryCount            = 1
	defaultNPMBinary             = "npm"
	defaultPackageManagerTimeout = 5 * time.Second
	defaultScanConcurrency       = 8

	// RegistryModeHTTP queries the registry over HTTP.
	RegistryModeHTTP = "http"
	// RegistryModeNPM asks the npm CLI.
	RegistryModeNPM = "npm"

	primaryConfigRelPath   = "Cursor/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json"
	secondaryConfigRelPath = "Claude/claude_desktop_config.json"
)

// defaultConfig returns built-in defaults for the running OS.
func defaultConfig() *StructuredConfig {
	return defaultConfigFor(runtime.GOOS, userHomeDir())
}

// defaultConfigFor returns built-in defaults for goos with client
// configuration files located under home.
func defaultConfigFor(goos, home string) *StructuredConfig {
	primary, secondary := clientConfigPaths(goos, home)

	return &StructuredConfig{
		App: App{
			Name:     defaultAppName,
			Version:  defaultAppVersion,
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				PrimaryConfigPath:   primary,
				SecondaryConfigPath: secondary,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			StaticDir:      defaultStaticDir,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			RegistryURL:           defaultRegistryURL,
			RegistryMode:          RegistryModeHTTP,
			RegistryTimeout:       defaultRegistryTimeout,
			RetryCount:            defaultRetryCount,
			NPMBinary:             defaultNPMBinary,
			PackageManagerTimeout: defaultPackageManagerTimeout,
		},
		Workers: Workers{
			ScanConcurrency: defaultScanConcurrency,
		},
	}
}

// clientConfigPaths returns the primary and secondary client configuration
// file locations for goos.
func clientConfigPaths(goos, home string) (primary, secondary string) {
	var base string
	switch goos {
	case "darwin":
		base = filepath.Join(home, "Library", "Application Support")
	case "windows":
		base = filepath.Join(home, "AppData", "Roaming")
	default:
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, filepath.FromSlash(primaryConfigRelPath)),
		filepath.Join(base, filepath.FromSlash(secondaryConfigRelPath))
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if home := os.Getenv("USERPROFILE"); home != "" {
		return home
	}
	return "."
}
