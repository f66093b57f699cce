package store

import (
	"context"

	"github.com/MKhiriev/mcp-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigStore reads and writes one client configuration document.
type ConfigStore interface {
	// Read returns the stored document. A missing file yields a document
	// with an empty server set.
	Read(ctx context.Context) (models.ConfigDocument, error)
	// Write replaces the stored document, creating parent directories.
	Write(ctx context.Context, doc models.ConfigDocument) error
	// Path reports where the document lives.
	Path() string
}
