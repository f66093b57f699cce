package adapter

import "errors"

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrInvalidPackageName  = errors.New("invalid package name")
	ErrEmptyVersion        = errors.New("empty version in response")
	ErrBadRequest          = errors.New("bad request")
	ErrRateLimited         = errors.New("rate limited")
	ErrRegistryUnavailable = errors.New("registry unavailable")
	ErrCommandFailed       = errors.New("package manager command failed")
	ErrUnknownRegistryMode = errors.New("unknown registry mode")
)
