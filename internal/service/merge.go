package service

import (
	"github.com/MKhiriev/mcp-manager/models"
)

// Merge overlays saved on top of defaults. Every default entry is copied,
// then the fields of each saved entry override the fields of the default
// entry with the same name, field by field. The result holds exactly the
// union of both name sets; neither input is modified.
func Merge(saved, defaults models.ServerConfigSet) models.ServerConfigSet {
	merged := make(models.ServerConfigSet, len(defaults)+len(saved))

	for name, entry := range defaults {
		merged[name] = entry.Clone()
	}

	for name, entry := range saved {
		base, ok := merged[name]
		if !ok {
			base = make(models.ServerEntry, len(entry))
		}
		for field, value := range entry {
			base[field] = value
		}
		merged[name] = base
	}

	return merged
}

// FilterDisabled returns the entries of set that are not disabled, each
// without its "disabled" field.
func FilterDisabled(set models.ServerConfigSet) models.ServerConfigSet {
	filtered := make(models.ServerConfigSet, len(set))
	for name, entry := range set {
		if entry.Disabled() {
			continue
		}
		filtered[name] = entry.Without(models.FieldDisabled)
	}
	return filtered
}
