// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound abstractions for finding package
// versions.
//
// [Registry] answers "what is the latest published version of a package" and
// ships two implementations: an HTTP client for the npm registry
// ([NewHTTPRegistry]) and a wrapper around `npm view` ([NewNPMRegistry]).
// [PackageManager] answers "which version is installed locally" through
// `npm list`.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// process failures so that callers can use [errors.Is] (e.g.
// [ErrPackageNotFound] for 404).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Registry looks up published package versions.
type Registry interface {
	// LatestVersion returns the version tagged "latest" for name. A package
	// that does not exist yields [ErrPackageNotFound].
	LatestVersion(ctx context.Context, name string) (string, error)
}

// PackageManager queries locally installed packages.
type PackageManager interface {
	// InstalledVersion returns the installed version of name as seen from
	// workDir. An empty workDir means the process working directory.
	InstalledVersion(ctx context.Context, name, workDir string) (string, error)
}
