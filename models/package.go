package models

// PackageIdentity is the best guess of the npm package backing a server.
type PackageIdentity struct {
	// Name is the full package name, including the scope if any.
	Name string `json:"name"`

	// IsScoped reports whether Name has the form @scope/name.
	IsScoped bool `json:"isScoped"`

	// Explicit is set when the name came from the entry's npmPackage field.
	// An explicit identity is never replaced by a fallback search.
	Explicit bool `json:"explicit"`
}

// PackageMatch is the first package name variation that resolved in the
// registry, together with the latest version reported for it.
type PackageMatch struct {
	PackageName string `json:"packageName"`
	Version     string `json:"version"`
}
