package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the layout of the optional config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Files struct {
			PrimaryConfigPath   string `json:"primary_config_path" yaml:"primary_config_path"`
			SecondaryConfigPath string `json:"secondary_config_path" yaml:"secondary_config_path"`
			DefaultsPath        string `json:"defaults_path" yaml:"defaults_path"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		StaticDir      string   `json:"static_dir" yaml:"static_dir"`
		AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
		DisableMCP     bool     `json:"disable_mcp" yaml:"disable_mcp"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		RegistryURL           string   `json:"registry_url" yaml:"registry_url"`
		RegistryMode          string   `json:"registry_mode" yaml:"registry_mode"`
		RegistryTimeout       Duration `json:"registry_timeout" yaml:"registry_timeout"`
		RetryCount            int      `json:"retry_count" yaml:"retry_count"`
		NPMBinary             string   `json:"npm_binary" yaml:"npm_binary"`
		PackageManagerTimeout Duration `json:"package_manager_timeout" yaml:"package_manager_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		ScanConcurrency     int      `json:"scan_concurrency" yaml:"scan_concurrency"`
		UpdateCheckInterval Duration `json:"update_check_interval" yaml:"update_check_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.structured(), nil
}

func (c *StructuredFileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     c.App.Name,
			Version:  c.App.Version,
			LogLevel: c.App.LogLevel,
		},
		Storage: Storage{
			Files: Files{
				PrimaryConfigPath:   c.Storage.Files.PrimaryConfigPath,
				SecondaryConfigPath: c.Storage.Files.SecondaryConfigPath,
				DefaultsPath:        c.Storage.Files.DefaultsPath,
			},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
			StaticDir:      c.Server.StaticDir,
			AllowedOrigins: c.Server.AllowedOrigins,
			DisableMCP:     c.Server.DisableMCP,
		},
		Adapter: Adapter{
			RegistryURL:           c.Adapter.RegistryURL,
			RegistryMode:          c.Adapter.RegistryMode,
			RegistryTimeout:       time.Duration(c.Adapter.RegistryTimeout),
			RetryCount:            c.Adapter.RetryCount,
			NPMBinary:             c.Adapter.NPMBinary,
			PackageManagerTimeout: time.Duration(c.Adapter.PackageManagerTimeout),
		},
		Workers: Workers{
			ScanConcurrency:     c.Workers.ScanConcurrency,
			UpdateCheckInterval: time.Duration(c.Workers.UpdateCheckInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are read as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
