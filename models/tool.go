package models

// Tool describes a tool exposed by a configured server, as listed in the UI.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Server      string         `json:"server,omitempty"`
}
