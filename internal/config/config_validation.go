// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	files := cfg.Storage.Files
	if files.PrimaryConfigPath == "" || files.SecondaryConfigPath == "" || files.DefaultsPath == "" {
		return fmt.Errorf("%w: client config paths must be set", ErrInvalidStorageConfigs)
	}

	switch cfg.Adapter.RegistryMode {
	case RegistryModeHTTP:
		if cfg.Adapter.RegistryURL == "" {
			return fmt.Errorf("%w: empty registry url", ErrInvalidAdapterConfigs)
		}
	case RegistryModeNPM:
	default:
		return fmt.Errorf("%w: unknown registry mode %q", ErrInvalidAdapterConfigs, cfg.Adapter.RegistryMode)
	}

	if cfg.Adapter.RegistryTimeout <= 0 || cfg.Adapter.PackageManagerTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ScanConcurrency < 1 {
		return fmt.Errorf("%w: scan concurrency must be at least 1", ErrInvalidWorkerConfigs)
	}

	if cfg.Workers.UpdateCheckInterval < 0 {
		return fmt.Errorf("%w: negative update check interval", ErrInvalidWorkerConfigs)
	}

	return nil
}
