package store

import "errors"

// Sentinel errors returned by [ConfigStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrMalformedConfig is returned when a configuration file exists but
	// does not contain a valid JSON document.
	ErrMalformedConfig = errors.New("malformed config file")

	// ErrReadingConfig is returned when a configuration file exists but
	// cannot be read.
	ErrReadingConfig = errors.New("error reading config file")

	// ErrWritingConfig is returned when a configuration file or its parent
	// directory cannot be written.
	ErrWritingConfig = errors.New("error writing config file")

	// ErrEmptyPath is returned when a store is constructed without a path.
	ErrEmptyPath = errors.New("config file path is empty")
)
