package store

import (
	"fmt"

	"github.com/MKhiriev/mcp-manager/internal/config"
	"github.com/MKhiriev/mcp-manager/internal/logger"
)

// Storages groups the configuration stores the service layer works with.
type Storages struct {
	// Primary is the editor-extension settings file holding every server,
	// disabled ones included.
	Primary ConfigStore
	// Secondary is the desktop client config file holding enabled servers.
	Secondary ConfigStore
	// Defaults is the bundled document of default server entries.
	Defaults ConfigStore
}

// NewStorages builds file-backed stores for the paths in cfg.
func NewStorages(cfg config.Files, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	primary, err := NewFileConfigStore(cfg.PrimaryConfigPath)
	if err != nil {
		return nil, fmt.Errorf("primary store: %w", err)
	}
	secondary, err := NewFileConfigStore(cfg.SecondaryConfigPath)
	if err != nil {
		return nil, fmt.Errorf("secondary store: %w", err)
	}
	defaults, err := NewFileConfigStore(cfg.DefaultsPath)
	if err != nil {
		return nil, fmt.Errorf("defaults store: %w", err)
	}

	log.Info().
		Str("primary", primary.Path()).
		Str("secondary", secondary.Path()).
		Str("defaults", defaults.Path()).
		Msg("config stores ready")

	return &Storages{
		Primary:   primary,
		Secondary: secondary,
		Defaults:  defaults,
	}, nil
}
