package models

// SaveResult is returned after both client configuration files were written.
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SaveRequest is the body accepted by the save endpoint. MCPServers is
// required; a nil set is rejected as a client error.
type SaveRequest struct {
	MCPServers ServerConfigSet `json:"mcpServers"`
}

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is served by the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Port      int    `json:"port"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ServiceStatus is served by the status endpoint.
type ServiceStatus struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Port    int    `json:"port"`
	Version string `json:"version"`
}

// ServerSummary is a compact view of one configured server.
type ServerSummary struct {
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
}
