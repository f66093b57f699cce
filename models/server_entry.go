// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Well-known fields of a [ServerEntry]. Any other field is carried verbatim.
const (
	FieldCommand    = "command"
	FieldArgs       = "args"
	FieldDisabled   = "disabled"
	FieldNPMPackage = "npmPackage"
)

// ServerEntry is a single tool-server launch definition as it appears under
// "mcpServers" in a client configuration file.
//
// The entry is kept as raw JSON fields so that fields this service does not
// know about (env, cwd, autoApprove, ...) survive merges and writes
// byte-for-byte. Typed accessors decode the well-known fields on demand.
type ServerEntry map[string]json.RawMessage

// ServerConfigSet maps a server name to its entry. Names are unique by
// construction.
type ServerConfigSet map[string]ServerEntry

// NewServerEntry builds an entry from the well-known fields. Empty values are
// omitted. It is mostly useful in tests and for programmatic configuration.
func NewServerEntry(command string, args ...string) ServerEntry {
	entry := ServerEntry{}
	if command != "" {
		entry.Set(FieldCommand, command)
	}
	if args != nil {
		entry.Set(FieldArgs, args)
	}
	return entry
}

// Set stores value under field, encoding it as JSON. Values that cannot be
// encoded are ignored.
func (e ServerEntry) Set(field string, value any) ServerEntry {
	raw, err := json.Marshal(value)
	if err != nil {
		return e
	}
	e[field] = raw
	return e
}

// Has reports whether field is present in the entry, even if it is null.
func (e ServerEntry) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Command returns the launch command, or "" when absent or not a string.
func (e ServerEntry) Command() string {
	return e.stringField(FieldCommand)
}

// NPMPackage returns the explicit package override, or "".
func (e ServerEntry) NPMPackage() string {
	return e.stringField(FieldNPMPackage)
}

// Args returns the launch arguments. Non-string elements are skipped.
func (e ServerEntry) Args() []string {
	raw, ok := e[FieldArgs]
	if !ok {
		return nil
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	args := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			args = append(args, s)
		}
	}
	return args
}

// ServerPath returns the first launch argument, which for locally installed
// servers is the path of the script being run.
func (e ServerEntry) ServerPath() string {
	args := e.Args()
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Disabled reports whether the "disabled" field holds a truthy JSON value.
// Absent, null, false, 0 and "" are all treated as enabled.
func (e ServerEntry) Disabled() bool {
	raw, ok := e[FieldDisabled]
	if !ok {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	default:
		return true
	}
}

// Clone returns a shallow copy of the entry. Raw field values are shared,
// which is safe because they are never mutated in place.
func (e ServerEntry) Clone() ServerEntry {
	clone := make(ServerEntry, len(e))
	for field, value := range e {
		clone[field] = value
	}
	return clone
}

// Without returns a shallow copy of the entry with field removed.
func (e ServerEntry) Without(field string) ServerEntry {
	clone := e.Clone()
	delete(clone, field)
	return clone
}

func (e ServerEntry) stringField(field string) string {
	raw, ok := e[field]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// Names returns the server names of the set in no particular order.
func (s ServerConfigSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
