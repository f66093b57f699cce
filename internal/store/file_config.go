// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/mcp-manager/internal/logger"
	"github.com/MKhiriev/mcp-manager/models"
)

const (
	configDirPerm  = 0o755
	configFilePerm = 0o644
	indent         = "  "
)

// fileConfigStore keeps a [models.ConfigDocument] in a single JSON file.
//
// Writes go to a temporary file in the same directory which is then renamed
// over the target, so readers never observe a half-written document.
type fileConfigStore struct {
	path string
}

// NewFileConfigStore returns a [ConfigStore] backed by the JSON file at path.
// The file does not have to exist yet.
func NewFileConfigStore(path string) (ConfigStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &fileConfigStore{path: path}, nil
}

func (f *fileConfigStore) Path() string {
	return f.path
}

func (f *fileConfigStore) Read(ctx context.Context) (models.ConfigDocument, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", f.path).Msg("config file does not exist, using empty document")
			return models.NewConfigDocument(nil), nil
		}
		log.Err(err).Str("path", f.path).Msg("failed to read config file")
		return models.ConfigDocument{}, fmt.Errorf("%w %s: %w", ErrReadingConfig, f.path, err)
	}

	var doc models.ConfigDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		log.Err(err).Str("path", f.path).Msg("config file is not valid JSON")
		return models.ConfigDocument{}, fmt.Errorf("%w %s: %w", ErrMalformedConfig, f.path, err)
	}

	return doc, nil
}

func (f *fileConfigStore) Write(ctx context.Context, doc models.ConfigDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrWritingConfig, f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, configDirPerm); err != nil {
		log.Err(err).Str("path", f.path).Msg("failed to create config directory")
		return fmt.Errorf("%w: create dir %s: %w", ErrWritingConfig, dir, err)
	}

	if err = writeFileAtomic(f.path, payload); err != nil {
		log.Err(err).Str("path", f.path).Msg("failed to write config file")
		return fmt.Errorf("%w %s: %w", ErrWritingConfig, f.path, err)
	}

	log.Debug().Str("path", f.path).Int("servers", len(doc.MCPServers)).Msg("config file written")
	return nil
}

func writeFileAtomic(path string, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(configFilePerm); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
