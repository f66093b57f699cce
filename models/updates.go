package models

// Human-readable update check outcomes reported in [UpdateInfo.Reason].
const (
	ReasonNoIdentity      = "Unable to determine package name"
	ReasonNoCurrent       = "Could not determine current version"
	ReasonNoLatest        = "Could not fetch latest version"
	ReasonUpdateAvailable = "Update available"
	ReasonUpToDate        = "Up to date"
	ReasonErrorPrefix     = "Error: "
)

// UpdateInfo is the outcome of an update check for one server.
type UpdateInfo struct {
	HasUpdate      bool    `json:"hasUpdate"`
	PackageName    *string `json:"packageName"`
	CurrentVersion *string `json:"currentVersion"`
	LatestVersion  *string `json:"latestVersion"`
	Reason         string  `json:"reason"`
}

// UpdatesReport aggregates the update checks of every configured server.
type UpdatesReport struct {
	Success            bool                  `json:"success"`
	Updates            map[string]UpdateInfo `json:"updates"`
	TotalServers       int                   `json:"totalServers"`
	ServersWithUpdates int                   `json:"serversWithUpdates"`
}

// NullableString returns nil for an empty string and a pointer to s
// otherwise, so that unknown values are encoded as JSON null.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
