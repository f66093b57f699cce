package service

import "errors"

var (
	ErrNoServerConfigProvided = errors.New("no server configuration provided")
	ErrUnknownStore           = errors.New("unknown config store")
	ErrVersionIsNotSpecified  = errors.New("app version is not specified")

	ErrReadingConfig = errors.New("failed to read config")
	ErrSavingConfig  = errors.New("failed to save configurations")
)
