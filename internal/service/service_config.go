// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/internal/store"
	"github.com/MKhiriev/mcp-manager/models"
)

// SaveSuccessMessage is reported after both stores were written.
const SaveSuccessMessage = "Configurations saved successfully. Please restart Claude to apply changes."

type configService struct {
	primary   store.ConfigStore
	secondary store.ConfigStore
	defaults  store.ConfigStore

	logger *logger.Logger
}

// NewConfigService constructs a [ConfigService] over the given stores.
func NewConfigService(storages *store.Storages, logger *logger.Logger) ConfigService {
	return &configService{
		primary:   storages.Primary,
		secondary: storages.Secondary,
		defaults:  storages.Defaults,
		logger:    logger,
	}
}

func (c *configService) GetMergedConfig(ctx context.Context) (models.ConfigDocument, error) {
	ctx = logger.ContextWith(ctx, c.logger)
	log := logger.FromContext(ctx)

	saved, err := c.primary.Read(ctx)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("%w: primary: %w", ErrReadingConfig, err)
	}
	defaults, err := c.defaults.Read(ctx)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("%w: defaults: %w", ErrReadingConfig, err)
	}

	merged := Merge(saved.MCPServers, defaults.MCPServers)
	log.Debug().
		Int("saved", len(saved.MCPServers)).
		Int("defaults", len(defaults.MCPServers)).
		Int("merged", len(merged)).
		Msg("configs merged")

	return models.NewConfigDocument(merged), nil
}

func (c *configService) GetRawConfig(ctx context.Context, name string) (models.ConfigDocument, error) {
	ctx = logger.ContextWith(ctx, c.logger)
	s, err := c.storeByName(name)
	if err != nil {
		return models.ConfigDocument{}, err
	}

	doc, err := s.Read(ctx)
	if err != nil {
		return models.ConfigDocument{}, fmt.Errorf("%w: %s: %w", ErrReadingConfig, name, err)
	}
	return doc, nil
}

func (c *configService) storeByName(name string) (store.ConfigStore, error) {
	switch name {
	case StorePrimary:
		return c.primary, nil
	case StoreSecondary:
		return c.secondary, nil
	case StoreDefaults:
		return c.defaults, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, name)
	}
}

// SaveConfig writes the full set to the primary store and the enabled subset
// to the secondary store. Top-level keys other than "mcpServers" already
// present in either file are kept.
func (c *configService) SaveConfig(ctx context.Context, servers models.ServerConfigSet) (models.SaveResult, error) {
	ctx = logger.ContextWith(ctx, c.logger)
	log := logger.FromContext(ctx)

	if servers == nil {
		return models.SaveResult{}, ErrNoServerConfigProvided
	}

	if err := c.replaceServers(ctx, c.primary, servers); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: primary: %w", ErrSavingConfig, err)
	}

	enabled := FilterDisabled(servers)
	if err := c.replaceServers(ctx, c.secondary, enabled); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: secondary: %w", ErrSavingConfig, err)
	}

	log.Info().
		Int("servers", len(servers)).
		Int("enabled", len(enabled)).
		Msg("configurations saved")

	return models.SaveResult{Success: true, Message: SaveSuccessMessage}, nil
}

// replaceServers swaps the server set of the document held by s. A missing
// or unreadable document is replaced as a whole.
func (c *configService) replaceServers(ctx context.Context, s store.ConfigStore, servers models.ServerConfigSet) error {
	log := logger.FromContext(ctx)

	doc, err := s.Read(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrMalformedConfig) {
			return err
		}
		log.Warn().Err(err).Str("path", s.Path()).Msg("overwriting malformed config file")
		doc = models.NewConfigDocument(nil)
	}

	doc.MCPServers = servers
	return s.Write(ctx, doc)
}

func (c *configService) ListServers(ctx context.Context) ([]models.ServerSummary, error) {
	doc, err := c.GetMergedConfig(ctx)
	if err != nil {
		return nil, err
	}

	names := doc.MCPServers.Names()
	slices.Sort(names)

	summaries := make([]models.ServerSummary, 0, len(names))
	for _, name := range names {
		entry := doc.MCPServers[name]
		summaries = append(summaries, models.ServerSummary{
			Name:    name,
			Enabled: !entry.Disabled(),
			Command: entry.Command(),
			Args:    entry.Args(),
		})
	}
	return summaries, nil
}
