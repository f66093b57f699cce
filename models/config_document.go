package models

import (
	"encoding/json"
	"fmt"
)

// MCPServersKey is the top-level key holding the server set in every
// client configuration file.
const MCPServersKey = "mcpServers"

// ConfigDocument is the on-disk JSON document of a client configuration file.
//
// Only the "mcpServers" key is interpreted; every other top-level key is kept
// in Extra and written back unchanged.
type ConfigDocument struct {
	MCPServers ServerConfigSet            `json:"mcpServers"`
	Extra      map[string]json.RawMessage `json:"-"`
}

// NewConfigDocument returns a document holding servers and no other keys.
// A nil set is replaced by an empty one.
func NewConfigDocument(servers ServerConfigSet) ConfigDocument {
	if servers == nil {
		servers = ServerConfigSet{}
	}
	return ConfigDocument{MCPServers: servers}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *ConfigDocument) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	servers := ServerConfigSet{}
	if raw, ok := fields[MCPServersKey]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return fmt.Errorf("decode %q: %w", MCPServersKey, err)
		}
		if servers == nil {
			servers = ServerConfigSet{}
		}
		delete(fields, MCPServersKey)
	}

	d.MCPServers = servers
	d.Extra = nil
	if len(fields) > 0 {
		d.Extra = fields
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d ConfigDocument) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(d.Extra)+1)
	for key, value := range d.Extra {
		fields[key] = value
	}

	servers := d.MCPServers
	if servers == nil {
		servers = ServerConfigSet{}
	}
	fields[MCPServersKey] = servers

	return json.Marshal(fields)
}
